package user

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

func (b *business) ListUsers(ctx context.Context, filter model.UserFilter, pageNumber, pageSize int) ([]model.User, error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, apperr.New(errs.InvalidArgument, "page number and page size must be positive")
	}

	resp, err := b.userRepo.GetUsers(ctx, filter, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	if err := resp.Err("failed to list users"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
