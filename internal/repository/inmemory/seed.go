package inmemory

import (
	"github.com/kidulajumba254/invoice-management-system/internal/domain/client"
	"github.com/kidulajumba254/invoice-management-system/internal/domain/invoice"
	"github.com/kidulajumba254/invoice-management-system/internal/types"
	"github.com/shopspring/decimal"
)

// SeedClients returns the fixed client collection
func SeedClients() []*client.Client {
	return []*client.Client{
		{
			ID:      "client-1",
			Name:    "John Smith",
			Email:   "john@example.com",
			Phone:   "555-123-4567",
			Company: "ABC Corporation",
			Address: "123 Main St, Cityville, State 12345",
		},
		{
			ID:      "client-2",
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Phone:   "555-765-4321",
			Company: "XYZ Company",
			Address: "456 Oak Ave, Townsville, State 67890",
		},
		{
			ID:      "client-3",
			Name:    "Robert Johnson",
			Email:   "robert@example.com",
			Phone:   "555-987-6543",
			Company: "Johnson & Co",
			Address: "789 Maple Dr, Villageton, State 54321",
		},
		{
			ID:      "client-4",
			Name:    "Sarah Williams",
			Email:   "sarah@example.com",
			Phone:   "555-234-5678",
			Company: "Williams Design",
			Address: "101 Pine St, Hamletville, State 13579",
		},
		{
			ID:      "client-5",
			Name:    "Michael Brown",
			Email:   "michael@example.com",
			Phone:   "555-876-5432",
			Company: "Brown Consulting",
			Address: "202 Cedar Ln, Boroughton, State 24680",
		},
	}
}

func seedItem(id, description string, quantity, price int64) *invoice.LineItem {
	return &invoice.LineItem{
		ID:          id,
		Description: description,
		Quantity:    decimal.NewFromInt(quantity),
		UnitPrice:   decimal.NewFromInt(price),
	}
}

func seedInvoice(
	id, number string,
	c *client.Client,
	issued, due string,
	status types.InvoiceStatus,
	items []*invoice.LineItem,
	notes string,
	paid int64,
) *invoice.Invoice {
	inv := &invoice.Invoice{
		ID:            id,
		InvoiceNumber: number,
		Client:        *c,
		IssueDate:     types.MustParseDate(issued),
		DueDate:       types.MustParseDate(due),
		Status:        status,
		Items:         items,
		Notes:         notes,
		AmountPaid:    decimal.NewFromInt(paid),
	}
	inv.RecomputeTotal()
	return inv
}

// SeedInvoices returns the fixed invoice collection. Each invoice carries a
// snapshot of its client taken at seed time.
func SeedInvoices() []*invoice.Invoice {
	clients := SeedClients()

	return []*invoice.Invoice{
		seedInvoice("inv-1", "INV-001", clients[0], "2025-04-01", "2025-05-01",
			types.InvoiceStatusPaid,
			[]*invoice.LineItem{
				seedItem("item-1-1", "Web Design Services", 1, 1500),
				seedItem("item-1-2", "SEO Optimization", 1, 500),
			},
			"Thank you for your business!", 2000),
		seedInvoice("inv-2", "INV-002", clients[1], "2025-04-10", "2025-05-10",
			types.InvoiceStatusPending,
			[]*invoice.LineItem{
				seedItem("item-2-1", "Logo Design", 1, 800),
				seedItem("item-2-2", "Business Card Design", 1, 200),
			},
			"Please pay within 30 days.", 0),
		seedInvoice("inv-3", "INV-003", clients[2], "2025-04-15", "2025-04-29",
			types.InvoiceStatusPaid,
			[]*invoice.LineItem{
				seedItem("item-3-1", "Consultation", 2, 250),
				seedItem("item-3-2", "Market Analysis Report", 1, 1500),
			},
			"", 2000),
		seedInvoice("inv-4", "INV-004", clients[3], "2025-04-20", "2025-05-20",
			types.InvoiceStatusPending,
			[]*invoice.LineItem{
				seedItem("item-4-1", "Website Maintenance (Monthly)", 1, 350),
			},
			"Recurring monthly invoice.", 0),
		seedInvoice("inv-5", "INV-005", clients[4], "2025-03-01", "2025-03-31",
			types.InvoiceStatusDraft,
			[]*invoice.LineItem{
				seedItem("item-5-1", "Marketing Strategy Development", 1, 2500),
				seedItem("item-5-2", "Content Creation", 5, 100),
			},
			"Draft - Not yet submitted to client.", 0),
		seedInvoice("inv-6", "INV-006", clients[0], "2025-02-15", "2025-03-15",
			types.InvoiceStatusPaid,
			[]*invoice.LineItem{
				seedItem("item-6-1", "Mobile App UI Design", 1, 3000),
			},
			"Paid on time. Thank you!", 3000),
		seedInvoice("inv-7", "INV-007", clients[2], "2025-04-25", "2025-05-25",
			types.InvoiceStatusPending,
			[]*invoice.LineItem{
				seedItem("item-7-1", "Social Media Management (Monthly)", 1, 800),
			},
			"First month of six-month contract.", 0),
	}
}
