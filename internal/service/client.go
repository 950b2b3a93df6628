package service

import (
	"context"

	"github.com/kidulajumba254/invoice-management-system/internal/api/dto"
	"github.com/kidulajumba254/invoice-management-system/internal/domain/client"
	"github.com/kidulajumba254/invoice-management-system/internal/types"
	"github.com/samber/lo"
)

// ClientService exposes read operations over the client collection
type ClientService interface {
	GetClient(ctx context.Context, id string) (*dto.ClientResponse, error)
	ListClients(ctx context.Context, filter types.ClientFilter) (*dto.ListClientsResponse, error)
}

type clientService struct {
	ServiceParams
}

func NewClientService(params ServiceParams) ClientService {
	return &clientService{
		ServiceParams: params,
	}
}

func (s *clientService) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewClientResponse(c), nil
}

func (s *clientService) ListClients(ctx context.Context, filter types.ClientFilter) (*dto.ListClientsResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := client.Filter(clients, filter.Search)
	items := lo.Map(matched, func(c *client.Client, _ int) *dto.ClientResponse {
		return dto.NewClientResponse(c)
	})

	resp := types.NewListResponse(items)
	return &resp, nil
}
