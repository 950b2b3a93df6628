package types

// InvoiceFilter narrows invoice list queries. The zero value matches every
// invoice.
type InvoiceFilter struct {
	// Search is matched case-insensitively against the invoice number and
	// the client name. Empty matches everything.
	Search string `json:"search,omitempty" form:"search"`
	// Status is "all" (or empty) or one of draft, pending, paid
	Status InvoiceStatusFilter `json:"status,omitempty" form:"status"`
}

func (f InvoiceFilter) Validate() error {
	return f.Status.Validate()
}

// ClientFilter narrows client list queries. The zero value matches every
// client.
type ClientFilter struct {
	// Search is matched case-insensitively against name, email and company
	Search string `json:"search,omitempty" form:"search"`
}

func (f ClientFilter) Validate() error {
	return nil
}
