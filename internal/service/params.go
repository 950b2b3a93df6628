package service

import (
	"github.com/kidulajumba254/invoice-management-system/internal/cache"
	"github.com/kidulajumba254/invoice-management-system/internal/config"
	"github.com/kidulajumba254/invoice-management-system/internal/domain/client"
	"github.com/kidulajumba254/invoice-management-system/internal/domain/invoice"
	"github.com/kidulajumba254/invoice-management-system/internal/logger"
)

// ServiceParams holds the common dependencies injected into every service
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	ClientRepo  client.Repository
	InvoiceRepo invoice.Repository
}

// NewServiceParams assembles the shared service dependencies
func NewServiceParams(
	log *logger.Logger,
	cfg *config.Configuration,
	c cache.Cache,
	clientRepo client.Repository,
	invoiceRepo invoice.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:      log,
		Config:      cfg,
		Cache:       c,
		ClientRepo:  clientRepo,
		InvoiceRepo: invoiceRepo,
	}
}
