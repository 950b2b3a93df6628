package dto

import (
	"github.com/kidulajumba254/invoice-management-system/internal/domain/client"
	"github.com/kidulajumba254/invoice-management-system/internal/types"
)

// ClientResponse represents a client in API responses
type ClientResponse struct {
	*client.Client
}

// NewClientResponse creates a client response from a domain client
func NewClientResponse(c *client.Client) *ClientResponse {
	return &ClientResponse{Client: c}
}

// ListClientsResponse represents the response for listing clients
type ListClientsResponse = types.ListResponse[*ClientResponse]
