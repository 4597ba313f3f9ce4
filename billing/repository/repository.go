package repository

import (
	"admin.app/billing/api"
	"admin.app/billing/repository/clients"
	"admin.app/billing/repository/invoices"
	"admin.app/billing/repository/products"
	"admin.app/billing/repository/users"
)

// Repository combines all entity repositories
type Repository struct {
	Invoices invoices.Querier
	Clients  clients.Querier
	Products products.Querier
	Users    users.Querier
}

// NewRepository creates a Repository whose queriers share one backend client
func NewRepository(c *api.Client) *Repository {
	return &Repository{
		Invoices: invoices.New(c),
		Clients:  clients.New(c),
		Products: products.New(c),
		Users:    users.New(c),
	}
}
