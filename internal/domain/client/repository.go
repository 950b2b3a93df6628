package client

import "context"

// Repository defines the interface for client lookups
type Repository interface {
	// Get retrieves a client by ID
	Get(ctx context.Context, id string) (*Client, error)

	// List retrieves all clients in insertion order
	List(ctx context.Context) ([]*Client, error)

	// Count returns the total number of clients
	Count(ctx context.Context) (int, error)
}
