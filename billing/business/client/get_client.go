package client

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

func (b *business) GetClient(ctx context.Context, id int) (*model.Client, error) {
	if id <= 0 {
		return nil, apperr.New(errs.InvalidArgument, "client id must be positive")
	}

	resp, err := b.clientRepo.GetClientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := resp.Err("failed to get client"); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, apperr.New(errs.NotFound, "client not found")
	}
	return resp.Data, nil
}
