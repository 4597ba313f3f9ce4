package product

//go:generate mockgen -source=business.go -destination=../../mocks/business/product_business/business.go -package=product_business

import (
	"context"

	"admin.app/billing/model"
	"admin.app/billing/repository/products"
)

type Business interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int) (*model.Product, error)
	CreateProduct(ctx context.Context, req model.ProductCreateRequest) error
	UpdateProduct(ctx context.Context, req model.ProductEditRequest) error
	DeleteProduct(ctx context.Context, id int) error
}

type business struct {
	productRepo products.Querier
}

// NewProductBusiness creates the product business layer
func NewProductBusiness(productRepo products.Querier) Business {
	return &business{
		productRepo: productRepo,
	}
}
