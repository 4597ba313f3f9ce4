package clients

//go:generate mockgen -source=querier.go -destination=../../mocks/repository/client_repo/querier.go -package=client_repo

import (
	"context"

	"admin.app/billing/api"
	"admin.app/billing/model"
)

type Querier interface {
	GetClients(ctx context.Context, filter model.ClientFilter, pageNumber, pageSize int) (*model.Response[[]model.Client], error)
	GetClientByID(ctx context.Context, id int) (*model.Response[*model.Client], error)
	CreateClient(ctx context.Context, req model.ClientRequest) (*model.Ack, error)
	UpdateClient(ctx context.Context, req model.ClientEditRequest) (*model.Ack, error)
	DeleteClient(ctx context.Context, id int) (*model.Ack, error)
}

var _ Querier = (*Queries)(nil)

type Queries struct {
	gw *api.ClientAPI
}

func New(c *api.Client) *Queries {
	return &Queries{gw: api.NewClientAPI(c)}
}

func (q *Queries) GetClients(ctx context.Context, filter model.ClientFilter, pageNumber, pageSize int) (*model.Response[[]model.Client], error) {
	return q.gw.GetClients(ctx, filter, pageNumber, pageSize)
}

func (q *Queries) GetClientByID(ctx context.Context, id int) (*model.Response[*model.Client], error) {
	return q.gw.GetClientByID(ctx, id)
}

func (q *Queries) CreateClient(ctx context.Context, req model.ClientRequest) (*model.Ack, error) {
	return q.gw.CreateClient(ctx, req)
}

func (q *Queries) UpdateClient(ctx context.Context, req model.ClientEditRequest) (*model.Ack, error) {
	return q.gw.UpdateClient(ctx, req)
}

func (q *Queries) DeleteClient(ctx context.Context, id int) (*model.Ack, error) {
	return q.gw.DeleteClient(ctx, id)
}
