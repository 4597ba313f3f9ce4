package client

//go:generate mockgen -source=business.go -destination=../../mocks/business/client_business/business.go -package=client_business

import (
	"context"

	"admin.app/billing/model"
	"admin.app/billing/repository/clients"
)

type Business interface {
	ListClients(ctx context.Context, filter model.ClientFilter, pageNumber, pageSize int) ([]model.Client, error)
	GetClient(ctx context.Context, id int) (*model.Client, error)
	CreateClient(ctx context.Context, req model.ClientRequest) error
	UpdateClient(ctx context.Context, req model.ClientEditRequest) error
	DeleteClient(ctx context.Context, id int) error
}

type business struct {
	clientRepo clients.Querier
}

// NewClientBusiness creates the client business layer
func NewClientBusiness(clientRepo clients.Querier) Business {
	return &business{
		clientRepo: clientRepo,
	}
}
