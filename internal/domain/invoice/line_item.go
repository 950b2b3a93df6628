package invoice

import (
	ierr "github.com/kidulajumba254/invoice-management-system/internal/errors"
	"github.com/shopspring/decimal"
)

// LineItem represents a single billable line in an invoice
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"price"`
}

// Amount returns the line total, quantity times unit price. Negative inputs
// are clamped to zero so that lenient form parsing can never produce a
// negative line amount.
func (li *LineItem) Amount() decimal.Decimal {
	qty := li.Quantity
	if qty.IsNegative() {
		qty = decimal.Zero
	}
	price := li.UnitPrice
	if price.IsNegative() {
		price = decimal.Zero
	}
	return qty.Mul(price)
}

// Validate validates the invoice line item
func (li *LineItem) Validate() error {
	if li.Description == "" {
		return ierr.NewError("invoice line item validation failed").
			WithHint("All items must have a description").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Total sums the line amounts of a sequence of items, zero for an empty
// sequence
func Total(items []*LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount())
	}
	return total
}
