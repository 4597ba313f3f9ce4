package product

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

// ListProducts returns the whole catalog; the backend does not paginate it.
func (b *business) ListProducts(ctx context.Context) ([]model.Product, error) {
	return b.productRepo.GetProducts(ctx)
}

func (b *business) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	if id <= 0 {
		return nil, apperr.New(errs.InvalidArgument, "product id must be positive")
	}

	p, err := b.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(errs.NotFound, "product not found")
	}
	return p, nil
}
