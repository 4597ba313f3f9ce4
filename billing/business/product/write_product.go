package product

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

func (b *business) CreateProduct(ctx context.Context, req model.ProductCreateRequest) error {
	if err := model.Validate(req); err != nil {
		return err
	}
	return b.productRepo.CreateProduct(ctx, req)
}

func (b *business) UpdateProduct(ctx context.Context, req model.ProductEditRequest) error {
	if err := model.Validate(req); err != nil {
		return err
	}
	return b.productRepo.UpdateProduct(ctx, req)
}

func (b *business) DeleteProduct(ctx context.Context, id int) error {
	if id <= 0 {
		return apperr.New(errs.InvalidArgument, "product id must be positive")
	}
	return b.productRepo.DeleteProduct(ctx, model.ProductDeleteRequest{ID: id})
}
