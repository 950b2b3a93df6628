package client

import (
	"strings"

	ierr "github.com/kidulajumba254/invoice-management-system/internal/errors"
)

// Client represents a billable entity. Clients are seeded at startup and are
// immutable afterwards; invoices embed a snapshot of the client record as it
// was at issuance time.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Company string `json:"company,omitempty"`
}

func (c *Client) Validate() error {
	if c.Name == "" {
		return ierr.NewError("client validation failed").
			WithHint("Client name is required").
			Mark(ierr.ErrValidation)
	}
	if c.Email == "" {
		return ierr.NewError("client validation failed").
			WithHint("Client email is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Matches reports whether the client matches a case-insensitive substring
// search against name, email or company
func (c *Client) Matches(search string) bool {
	if search == "" {
		return true
	}
	term := strings.ToLower(search)
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Email), term) ||
		(c.Company != "" && strings.Contains(strings.ToLower(c.Company), term))
}

// Filter returns the clients matching the search term, preserving input
// order. The input slice is never mutated.
func Filter(clients []*Client, search string) []*Client {
	result := make([]*Client, 0, len(clients))
	for _, c := range clients {
		if c.Matches(search) {
			result = append(result, c)
		}
	}
	return result
}
