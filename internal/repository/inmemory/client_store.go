package inmemory

import (
	"context"

	"github.com/kidulajumba254/invoice-management-system/internal/domain/client"
	ierr "github.com/kidulajumba254/invoice-management-system/internal/errors"
)

// ClientStore implements client.Repository over the seed collection
type ClientStore struct {
	store *Store[*client.Client]
}

// NewClientStore creates a client store holding the given clients in order
func NewClientStore(clients ...*client.Client) (*ClientStore, error) {
	s := &ClientStore{
		store: NewStore[*client.Client](),
	}
	ctx := context.Background()
	for _, c := range clients {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if err := s.store.Create(ctx, c.ID, copyClient(c)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func copyClient(c *client.Client) *client.Client {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (s *ClientStore) Get(ctx context.Context, id string) (*client.Client, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Client with id %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyClient(c), nil
}

func (s *ClientStore) List(ctx context.Context) ([]*client.Client, error) {
	clients, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*client.Client, len(clients))
	for i, c := range clients {
		result[i] = copyClient(c)
	}
	return result, nil
}

func (s *ClientStore) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}
