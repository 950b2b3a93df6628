package inmemory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/kidulajumba254/invoice-management-system/internal/domain/invoice"
	ierr "github.com/kidulajumba254/invoice-management-system/internal/errors"
)

// InvoiceNumberPrefix is the human-facing invoice number prefix
const InvoiceNumberPrefix = "INV-"

// InvoiceStore implements invoice.Repository. Beyond the plain collection it
// owns the invoice-number sequence and a version counter that derived
// results (statistics) use as a cache key.
type InvoiceStore struct {
	store *Store[*invoice.Invoice]

	mu      sync.Mutex
	seq     int
	version uint64
}

// NewInvoiceStore creates an invoice store holding the given invoices in
// order. The number sequence starts past the highest seeded number so that
// generated numbers never collide with seed data.
func NewInvoiceStore(invoices ...*invoice.Invoice) (*InvoiceStore, error) {
	s := &InvoiceStore{
		store: NewStore[*invoice.Invoice](),
	}
	ctx := context.Background()
	for _, inv := range invoices {
		if err := s.Create(ctx, inv); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func copyLineItem(item *invoice.LineItem) *invoice.LineItem {
	if item == nil {
		return nil
	}
	cp := *item
	return &cp
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}
	cp := *inv
	if inv.Items != nil {
		cp.Items = make([]*invoice.LineItem, len(inv.Items))
		for i, item := range inv.Items {
			cp.Items[i] = copyLineItem(item)
		}
	}
	return &cp
}

func (s *InvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	if inv == nil {
		return ierr.NewError("invoice cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := inv.Validate(); err != nil {
		return err
	}
	if err := s.store.Create(ctx, inv.ID, copyInvoice(inv)); err != nil {
		return err
	}

	s.mu.Lock()
	s.advanceSequenceLocked(inv.InvoiceNumber)
	s.version++
	s.mu.Unlock()
	return nil
}

func (s *InvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Invoice with id %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

func (s *InvoiceStore) List(ctx context.Context) ([]*invoice.Invoice, error) {
	invoices, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*invoice.Invoice, len(invoices))
	for i, inv := range invoices {
		result[i] = copyInvoice(inv)
	}
	return result, nil
}

func (s *InvoiceStore) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// NextInvoiceNumber reserves the next number in the INV-NNNN sequence. The
// sequence is monotonic, so numbers are unique by construction rather than
// by probabilistic accident.
func (s *InvoiceStore) NextInvoiceNumber(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	return fmt.Sprintf("%s%04d", InvoiceNumberPrefix, s.seq), nil
}

// Version returns the mutation counter for the invoice collection
func (s *InvoiceStore) Version(ctx context.Context) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// advanceSequenceLocked bumps the sequence past an externally supplied
// invoice number, e.g. from seed data
func (s *InvoiceStore) advanceSequenceLocked(number string) {
	raw := strings.TrimPrefix(number, InvoiceNumberPrefix)
	if n, err := strconv.Atoi(raw); err == nil && n > s.seq {
		s.seq = n
	}
}
