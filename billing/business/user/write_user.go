package user

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

func (b *business) CreateUser(ctx context.Context, req model.UserRequest) error {
	if err := model.Validate(req); err != nil {
		return err
	}

	resp, err := b.userRepo.CreateUser(ctx, req)
	if err != nil {
		return err
	}
	return resp.Err("failed to create user")
}

func (b *business) UpdateUser(ctx context.Context, req model.UserEditRequest) error {
	if err := model.Validate(req); err != nil {
		return err
	}

	resp, err := b.userRepo.UpdateUser(ctx, req)
	if err != nil {
		return err
	}
	return resp.Err("failed to update user")
}

// DeleteUser deactivates a user account.
func (b *business) DeleteUser(ctx context.Context, id int) error {
	if id <= 0 {
		return apperr.New(errs.InvalidArgument, "user id must be positive")
	}

	resp, err := b.userRepo.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	return resp.Err("failed to delete user")
}
