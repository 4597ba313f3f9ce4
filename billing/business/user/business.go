package user

//go:generate mockgen -source=business.go -destination=../../mocks/business/user_business/business.go -package=user_business

import (
	"context"

	"admin.app/billing/model"
	"admin.app/billing/repository/users"
)

type Business interface {
	ListUsers(ctx context.Context, filter model.UserFilter, pageNumber, pageSize int) ([]model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
	CreateUser(ctx context.Context, req model.UserRequest) error
	UpdateUser(ctx context.Context, req model.UserEditRequest) error
	DeleteUser(ctx context.Context, id int) error
}

type business struct {
	userRepo users.Querier
}

// NewUserBusiness creates the user business layer
func NewUserBusiness(userRepo users.Querier) Business {
	return &business{
		userRepo: userRepo,
	}
}
