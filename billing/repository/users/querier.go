package users

//go:generate mockgen -source=querier.go -destination=../../mocks/repository/user_repo/querier.go -package=user_repo

import (
	"context"

	"admin.app/billing/api"
	"admin.app/billing/model"
)

type Querier interface {
	GetUsers(ctx context.Context, filter model.UserFilter, pageNumber, pageSize int) (*model.Response[[]model.User], error)
	GetUserByID(ctx context.Context, id int) (*model.Response[*model.User], error)
	CreateUser(ctx context.Context, req model.UserRequest) (*model.Ack, error)
	UpdateUser(ctx context.Context, req model.UserEditRequest) (*model.Ack, error)
	DeleteUser(ctx context.Context, id int) (*model.Ack, error)
}

var _ Querier = (*Queries)(nil)

type Queries struct {
	gw *api.UserAPI
}

func New(c *api.Client) *Queries {
	return &Queries{gw: api.NewUserAPI(c)}
}

func (q *Queries) GetUsers(ctx context.Context, filter model.UserFilter, pageNumber, pageSize int) (*model.Response[[]model.User], error) {
	return q.gw.GetUsers(ctx, filter, pageNumber, pageSize)
}

func (q *Queries) GetUserByID(ctx context.Context, id int) (*model.Response[*model.User], error) {
	return q.gw.GetUserByID(ctx, id)
}

func (q *Queries) CreateUser(ctx context.Context, req model.UserRequest) (*model.Ack, error) {
	return q.gw.CreateUser(ctx, req)
}

func (q *Queries) UpdateUser(ctx context.Context, req model.UserEditRequest) (*model.Ack, error) {
	return q.gw.UpdateUser(ctx, req)
}

func (q *Queries) DeleteUser(ctx context.Context, id int) (*model.Ack, error) {
	return q.gw.DeleteUser(ctx, id)
}
