package invoice

import "context"

// Repository defines the interface for invoice persistence operations
type Repository interface {
	// Create adds a new invoice
	Create(ctx context.Context, invoice *Invoice) error

	// Get retrieves an invoice by ID
	Get(ctx context.Context, id string) (*Invoice, error)

	// List retrieves all invoices in insertion order
	List(ctx context.Context) ([]*Invoice, error)

	// Count returns the total number of invoices
	Count(ctx context.Context) (int, error)

	// NextInvoiceNumber reserves and returns the next human-facing invoice
	// number in the INV-NNNN sequence. Numbers are unique by construction.
	NextInvoiceNumber(ctx context.Context) (string, error)

	// Version returns a counter that increases on every mutation of the
	// collection. Callers use it to key derived results such as statistics.
	Version(ctx context.Context) uint64
}
