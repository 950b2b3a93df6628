package invoice

import (
	"sort"
	"strings"

	"github.com/kidulajumba254/invoice-management-system/internal/types"
)

// Matches reports whether the invoice passes the filter: the status must
// match and the search term must appear in the invoice number or the client
// name, case-insensitively. An empty search term always matches.
func (i *Invoice) Matches(filter types.InvoiceFilter) bool {
	if !filter.Status.Matches(i.Status) {
		return false
	}
	if filter.Search == "" {
		return true
	}
	term := strings.ToLower(filter.Search)
	return strings.Contains(strings.ToLower(i.InvoiceNumber), term) ||
		strings.Contains(strings.ToLower(i.Client.Name), term)
}

// Filter returns the invoices passing the filter, preserving input order.
// The input slice is never mutated.
func Filter(invoices []*Invoice, filter types.InvoiceFilter) []*Invoice {
	result := make([]*Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Matches(filter) {
			result = append(result, inv)
		}
	}
	return result
}

// Recent returns up to limit invoices ordered by issue date descending.
// The sort is stable, so invoices sharing a date keep their original
// relative order. The input slice is never mutated.
func Recent(invoices []*Invoice, limit int) []*Invoice {
	sorted := make([]*Invoice, len(invoices))
	copy(sorted, invoices)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[b].IssueDate.Before(sorted[a].IssueDate)
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}
