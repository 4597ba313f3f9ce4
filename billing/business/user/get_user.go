package user

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

func (b *business) GetUser(ctx context.Context, id int) (*model.User, error) {
	if id <= 0 {
		return nil, apperr.New(errs.InvalidArgument, "user id must be positive")
	}

	resp, err := b.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := resp.Err("failed to get user"); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, apperr.New(errs.NotFound, "user not found")
	}
	return resp.Data, nil
}
