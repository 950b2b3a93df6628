package types

import (
	ierr "github.com/kidulajumba254/invoice-management-system/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus represents the current state of an invoice in its lifecycle
type InvoiceStatus string

const (
	// InvoiceStatusDraft indicates the invoice has not yet been submitted to the client
	InvoiceStatusDraft InvoiceStatus = "draft"
	// InvoiceStatusPending indicates the invoice has been sent and is awaiting payment
	InvoiceStatusPending InvoiceStatus = "pending"
	// InvoiceStatusPaid indicates the invoice is fully settled
	InvoiceStatusPaid InvoiceStatus = "paid"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusPending,
		InvoiceStatusPaid,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Please provide a valid invoice status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// InvoiceStatusFilter is an invoice status with the additional "all" wildcard
// accepted by list endpoints
type InvoiceStatusFilter string

const (
	InvoiceStatusFilterAll InvoiceStatusFilter = "all"
)

func (f InvoiceStatusFilter) IsAll() bool {
	return f == "" || f == InvoiceStatusFilterAll
}

// Matches reports whether an invoice status passes the filter
func (f InvoiceStatusFilter) Matches(s InvoiceStatus) bool {
	return f.IsAll() || InvoiceStatus(f) == s
}

func (f InvoiceStatusFilter) Validate() error {
	if f.IsAll() {
		return nil
	}
	return InvoiceStatus(f).Validate()
}
