package invoice

import (
	"testing"

	"github.com/kidulajumba254/invoice-management-system/internal/domain/client"
	ierr "github.com/kidulajumba254/invoice-management-system/internal/errors"
	"github.com/kidulajumba254/invoice-management-system/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineItemAmount(t *testing.T) {
	testCases := []struct {
		name     string
		quantity int64
		price    int64
		expected int64
	}{
		{"simple", 2, 250, 500},
		{"zero_quantity", 0, 800, 0},
		{"zero_price", 3, 0, 0},
		{"negative_quantity_clamped", -4, 100, 0},
		{"negative_price_clamped", 2, -50, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := &LineItem{
				ID:          "item-1",
				Description: "test",
				Quantity:    decimal.NewFromInt(tc.quantity),
				UnitPrice:   decimal.NewFromInt(tc.price),
			}
			assert.True(t, item.Amount().Equal(decimal.NewFromInt(tc.expected)))
		})
	}
}

func TestTotal(t *testing.T) {
	// INV-002 from the seed: Logo Design 1x800 + Business Card Design 1x200
	items := []*LineItem{
		{ID: "item-2-1", Description: "Logo Design", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(800)},
		{ID: "item-2-2", Description: "Business Card Design", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(200)},
	}

	assert.True(t, Total(items).Equal(decimal.NewFromInt(1000)))
	assert.True(t, Total(nil).IsZero())
}

func validInvoice() *Invoice {
	inv := &Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-001",
		Client:        client.Client{ID: "client-1", Name: "John Smith", Email: "john@example.com"},
		IssueDate:     types.MustParseDate("2025-04-01"),
		DueDate:       types.MustParseDate("2025-05-01"),
		Status:        types.InvoiceStatusPending,
		Items: []*LineItem{
			{ID: "item-1", Description: "Web Design Services", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1500)},
		},
		AmountPaid: decimal.Zero,
	}
	inv.RecomputeTotal()
	return inv
}

func TestInvoiceValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validInvoice().Validate())
	})

	t.Run("no_items", func(t *testing.T) {
		inv := validInvoice()
		inv.Items = nil
		inv.RecomputeTotal()
		err := inv.Validate()
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("item_without_description", func(t *testing.T) {
		inv := validInvoice()
		inv.Items[0].Description = ""
		err := inv.Validate()
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("negative_amount_paid", func(t *testing.T) {
		inv := validInvoice()
		inv.AmountPaid = decimal.NewFromInt(-1)
		err := inv.Validate()
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("paid_exceeds_total", func(t *testing.T) {
		inv := validInvoice()
		inv.AmountPaid = inv.Total.Add(decimal.NewFromInt(1))
		err := inv.Validate()
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("stale_total", func(t *testing.T) {
		inv := validInvoice()
		inv.Total = decimal.NewFromInt(999)
		err := inv.Validate()
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("invalid_status", func(t *testing.T) {
		inv := validInvoice()
		inv.Status = "cancelled"
		err := inv.Validate()
		assert.True(t, ierr.IsValidation(err))
	})
}

func TestInvoiceTotalInvariant(t *testing.T) {
	inv := validInvoice()

	inv.Items = append(inv.Items, &LineItem{
		ID:          "item-2",
		Description: "SEO Optimization",
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   decimal.NewFromInt(500),
	})
	inv.RecomputeTotal()

	assert.True(t, inv.Total.Equal(Total(inv.Items)))
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(2000)))
}

func TestInvoiceBalance(t *testing.T) {
	inv := validInvoice()
	inv.AmountPaid = decimal.NewFromInt(500)

	assert.True(t, inv.Balance().Equal(decimal.NewFromInt(1000)))
}

func TestInvoiceIsOverdue(t *testing.T) {
	inv := validInvoice()

	assert.True(t, inv.IsOverdue(types.MustParseDate("2025-05-02")))
	assert.False(t, inv.IsOverdue(types.MustParseDate("2025-05-01")))

	inv.Status = types.InvoiceStatusPaid
	assert.False(t, inv.IsOverdue(types.MustParseDate("2025-05-02")))
}
