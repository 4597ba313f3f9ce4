package billing

import (
	"context"

	"admin.app/billing/model"
)

type ListProductsResponse struct {
	Products []model.Product `json:"products"`
}

func (s *Service) ListProducts(ctx context.Context) (*ListProductsResponse, error) {
	products, err := s.services.Product.ListProducts(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to list products")
		return nil, err
	}

	return &ListProductsResponse{Products: products}, nil
}
