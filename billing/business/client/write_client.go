package client

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

func (b *business) CreateClient(ctx context.Context, req model.ClientRequest) error {
	if err := model.Validate(req); err != nil {
		return err
	}

	resp, err := b.clientRepo.CreateClient(ctx, req)
	if err != nil {
		return err
	}
	return resp.Err("failed to create client")
}

func (b *business) UpdateClient(ctx context.Context, req model.ClientEditRequest) error {
	if err := model.Validate(req); err != nil {
		return err
	}

	resp, err := b.clientRepo.UpdateClient(ctx, req)
	if err != nil {
		return err
	}
	return resp.Err("failed to update client")
}

// DeleteClient deactivates a client.
func (b *business) DeleteClient(ctx context.Context, id int) error {
	if id <= 0 {
		return apperr.New(errs.InvalidArgument, "client id must be positive")
	}

	resp, err := b.clientRepo.DeleteClient(ctx, id)
	if err != nil {
		return err
	}
	return resp.Err("failed to delete client")
}
