package invoice

import (
	"github.com/kidulajumba254/invoice-management-system/internal/domain/client"
	ierr "github.com/kidulajumba254/invoice-management-system/internal/errors"
	"github.com/kidulajumba254/invoice-management-system/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents the invoice domain model. The client record is embedded
// as a value snapshot taken at issuance time, so later client edits never
// rewrite historical invoices.
type Invoice struct {
	ID            string              `json:"id"`
	InvoiceNumber string              `json:"invoice_number"`
	Client        client.Client       `json:"client"`
	IssueDate     types.Date          `json:"date"`
	DueDate       types.Date          `json:"due_date"`
	Status        types.InvoiceStatus `json:"status"`
	Items         []*LineItem         `json:"items"`
	Notes         string              `json:"notes,omitempty"`
	Total         decimal.Decimal     `json:"total"`
	AmountPaid    decimal.Decimal     `json:"paid"`
}

// Balance returns the amount still owed on the invoice
func (i *Invoice) Balance() decimal.Decimal {
	return i.Total.Sub(i.AmountPaid)
}

// RecomputeTotal re-derives the invoice total from its line items. Must be
// called whenever an item's quantity, price or membership changes.
func (i *Invoice) RecomputeTotal() {
	i.Total = Total(i.Items)
}

// IsOverdue reports whether the invoice is pending and past its due date
func (i *Invoice) IsOverdue(today types.Date) bool {
	return i.Status == types.InvoiceStatusPending && i.DueDate.Before(today)
}

func (i *Invoice) Validate() error {
	if err := i.Status.Validate(); err != nil {
		return err
	}

	if len(i.Items) == 0 {
		return ierr.NewError("invoice validation failed").
			WithHint("An invoice requires at least one line item").
			Mark(ierr.ErrValidation)
	}

	for _, item := range i.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	// amount validations
	if i.AmountPaid.IsNegative() {
		return ierr.NewError("invoice validation failed").
			WithHint("Amount paid must be non negative").
			Mark(ierr.ErrValidation)
	}

	if i.AmountPaid.GreaterThan(i.Total) {
		return ierr.NewError("invoice validation failed").
			WithHint("Amount paid must be less than or equal to the invoice total").
			Mark(ierr.ErrValidation)
	}

	if !i.Total.Equal(Total(i.Items)) {
		return ierr.NewError("invoice validation failed").
			WithHint("Invoice total must equal the sum of its line items").
			Mark(ierr.ErrValidation)
	}

	return nil
}
