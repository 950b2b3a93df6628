package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/kidulajumba254/invoice-management-system/internal/domain/client"
	"github.com/kidulajumba254/invoice-management-system/internal/domain/invoice"
	ierr "github.com/kidulajumba254/invoice-management-system/internal/errors"
	"github.com/kidulajumba254/invoice-management-system/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// defaultDueInDays is how far the due date defaults past the issue date
const defaultDueInDays = 30

// validate is shared across requests; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

type CreateInvoiceItemRequest struct {
	Description string `json:"description"`
	// Quantity and Price parse leniently: unparseable input becomes zero
	// instead of failing the request, matching the forgiving form behavior.
	Quantity types.LenientDecimal `json:"quantity"`
	Price    types.LenientDecimal `json:"price"`
}

type CreateInvoiceRequest struct {
	ClientID  string                     `json:"client_id" validate:"required"`
	IssueDate types.Date                 `json:"date"`
	DueDate   types.Date                 `json:"due_date"`
	Items     []CreateInvoiceItemRequest `json:"items" validate:"required,min=1"`
	Notes     string                     `json:"notes"`
	// SaveAsDraft keeps the invoice in draft instead of submitting it as
	// pending
	SaveAsDraft bool `json:"save_as_draft"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		if r.ClientID == "" {
			return ierr.WithError(err).
				WithHint("Please select a client").
				Mark(ierr.ErrValidation)
		}
		return ierr.WithError(err).
			WithHint("An invoice requires at least one line item").
			Mark(ierr.ErrValidation)
	}

	if lo.ContainsBy(r.Items, func(item CreateInvoiceItemRequest) bool {
		return item.Description == ""
	}) {
		return ierr.NewError("invoice item validation failed").
			WithHint("All items must have a description").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// ToInvoice builds the domain invoice. The invoice embeds a snapshot of the
// client record and is totalled eagerly from its items.
func (r *CreateInvoiceRequest) ToInvoice(invoiceNumber string, c *client.Client) *invoice.Invoice {
	issueDate := r.IssueDate
	if issueDate.IsZero() {
		issueDate = types.Today()
	}
	dueDate := r.DueDate
	if dueDate.IsZero() {
		dueDate = issueDate.AddDays(defaultDueInDays)
	}

	status := types.InvoiceStatusPending
	if r.SaveAsDraft {
		status = types.InvoiceStatusDraft
	}

	items := make([]*invoice.LineItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = &invoice.LineItem{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM),
			Description: item.Description,
			Quantity:    item.Quantity.Decimal,
			UnitPrice:   item.Price.Decimal,
		}
	}

	inv := &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		InvoiceNumber: invoiceNumber,
		Client:        *c,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Status:        status,
		Items:         items,
		Notes:         r.Notes,
		AmountPaid:    decimal.Zero,
	}
	inv.RecomputeTotal()
	return inv
}

// InvoiceLineItemResponse is a line item plus its derived amount
type InvoiceLineItemResponse struct {
	*invoice.LineItem
	Amount        decimal.Decimal `json:"amount"`
	DisplayAmount string          `json:"display_amount"`
}

// InvoiceResponse is an invoice plus derived and display-only fields
type InvoiceResponse struct {
	*invoice.Invoice
	Items            []*InvoiceLineItemResponse `json:"items"`
	Balance          decimal.Decimal            `json:"balance"`
	DisplayTotal     string                     `json:"display_total"`
	DisplayBalance   string                     `json:"display_balance"`
	DisplayIssueDate string                     `json:"display_date"`
	DisplayDueDate   string                     `json:"display_due_date"`
}

// NewInvoiceResponse creates an invoice response from a domain invoice
func NewInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	items := make([]*InvoiceLineItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = &InvoiceLineItemResponse{
			LineItem:      item,
			Amount:        item.Amount(),
			DisplayAmount: types.FormatAmount(item.Amount(), types.DefaultCurrency),
		}
	}

	return &InvoiceResponse{
		Invoice:          inv,
		Items:            items,
		Balance:          inv.Balance(),
		DisplayTotal:     types.FormatAmount(inv.Total, types.DefaultCurrency),
		DisplayBalance:   types.FormatAmount(inv.Balance(), types.DefaultCurrency),
		DisplayIssueDate: inv.IssueDate.Medium(),
		DisplayDueDate:   inv.DueDate.Medium(),
	}
}

// ListInvoicesResponse represents the response for listing invoices
type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]
