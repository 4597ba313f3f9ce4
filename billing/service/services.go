package service

import (
	"admin.app/billing/business/client"
	"admin.app/billing/business/invoice"
	"admin.app/billing/business/product"
	"admin.app/billing/business/user"
	"admin.app/billing/repository"
)

// Services holds all use cases
type Services struct {
	Invoice invoice.Business
	Client  client.Business
	Product product.Business
	User    user.Business
}

// NewServices creates a new services container
func NewServices(repo *repository.Repository) Services {
	return Services{
		Invoice: invoice.NewInvoiceBusiness(repo.Invoices),
		Client:  client.NewClientBusiness(repo.Clients),
		Product: product.NewProductBusiness(repo.Products),
		User:    user.NewUserBusiness(repo.Users),
	}
}
