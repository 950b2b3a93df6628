package client

import (
	"testing"

	ierr "github.com/kidulajumba254/invoice-management-system/internal/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func clientFixture() []*Client {
	return []*Client{
		{ID: "client-1", Name: "John Smith", Email: "john@example.com", Company: "ABC Corporation"},
		{ID: "client-2", Name: "Jane Doe", Email: "jane@example.com", Company: "XYZ Company"},
		{ID: "client-3", Name: "Robert Johnson", Email: "robert@example.com", Company: "Johnson & Co"},
		{ID: "client-4", Name: "Sarah Williams", Email: "sarah@example.com"},
	}
}

func TestFilter(t *testing.T) {
	clients := clientFixture()

	testCases := []struct {
		name        string
		search      string
		expectedIDs []string
	}{
		{
			name:        "empty_term_matches_all_in_order",
			search:      "",
			expectedIDs: []string{"client-1", "client-2", "client-3", "client-4"},
		},
		{
			name:        "match_by_company_case_insensitive",
			search:      "xyz",
			expectedIDs: []string{"client-2"},
		},
		{
			name:        "match_by_name",
			search:      "sarah",
			expectedIDs: []string{"client-4"},
		},
		{
			name:        "match_by_email",
			search:      "robert@",
			expectedIDs: []string{"client-3"},
		},
		{
			name:        "substring_matches_multiple",
			search:      "john",
			expectedIDs: []string{"client-1", "client-3"},
		},
		{
			name:        "no_match",
			search:      "nobody",
			expectedIDs: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Filter(clients, tc.search)
			ids := lo.Map(result, func(c *Client, _ int) string {
				return c.ID
			})
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestFilter_MissingCompanyNeverMatches(t *testing.T) {
	clients := []*Client{
		{ID: "client-1", Name: "Sarah Williams", Email: "sarah@example.com"},
	}

	assert.Empty(t, Filter(clients, "williams design"))
}

func TestClientValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := &Client{ID: "client-1", Name: "John Smith", Email: "john@example.com"}
		assert.NoError(t, c.Validate())
	})

	t.Run("missing_name", func(t *testing.T) {
		c := &Client{ID: "client-1", Email: "john@example.com"}
		assert.True(t, ierr.IsValidation(c.Validate()))
	})

	t.Run("missing_email", func(t *testing.T) {
		c := &Client{ID: "client-1", Name: "John Smith"}
		assert.True(t, ierr.IsValidation(c.Validate()))
	})
}
