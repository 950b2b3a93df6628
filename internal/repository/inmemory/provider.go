package inmemory

import (
	"github.com/kidulajumba254/invoice-management-system/internal/domain/client"
	"github.com/kidulajumba254/invoice-management-system/internal/domain/invoice"
	"github.com/kidulajumba254/invoice-management-system/internal/logger"
)

// NewClientRepository builds the seeded client repository
func NewClientRepository(log *logger.Logger) (client.Repository, error) {
	store, err := NewClientStore(SeedClients()...)
	if err != nil {
		return nil, err
	}
	log.Infow("seeded client repository", "clients", len(SeedClients()))
	return store, nil
}

// NewInvoiceRepository builds the seeded invoice repository
func NewInvoiceRepository(log *logger.Logger) (invoice.Repository, error) {
	store, err := NewInvoiceStore(SeedInvoices()...)
	if err != nil {
		return nil, err
	}
	log.Infow("seeded invoice repository", "invoices", len(SeedInvoices()))
	return store, nil
}
