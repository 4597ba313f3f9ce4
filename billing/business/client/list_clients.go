package client

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

func (b *business) ListClients(ctx context.Context, filter model.ClientFilter, pageNumber, pageSize int) ([]model.Client, error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, apperr.New(errs.InvalidArgument, "page number and page size must be positive")
	}

	resp, err := b.clientRepo.GetClients(ctx, filter, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	if err := resp.Err("failed to list clients"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
