package products

//go:generate mockgen -source=querier.go -destination=../../mocks/repository/product_repo/querier.go -package=product_repo

import (
	"context"

	"admin.app/billing/api"
	"admin.app/billing/model"
)

// Querier exposes the product catalog. Unlike the other entities the
// envelope is already unwrapped by the gateway.
type Querier interface {
	GetProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id int) (*model.Product, error)
	CreateProduct(ctx context.Context, req model.ProductCreateRequest) error
	UpdateProduct(ctx context.Context, req model.ProductEditRequest) error
	DeleteProduct(ctx context.Context, req model.ProductDeleteRequest) error
}

var _ Querier = (*Queries)(nil)

type Queries struct {
	gw *api.ProductAPI
}

func New(c *api.Client) *Queries {
	return &Queries{gw: api.NewProductAPI(c)}
}

func (q *Queries) GetProducts(ctx context.Context) ([]model.Product, error) {
	return q.gw.GetProducts(ctx)
}

func (q *Queries) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	return q.gw.GetProductByID(ctx, id)
}

func (q *Queries) CreateProduct(ctx context.Context, req model.ProductCreateRequest) error {
	return q.gw.CreateProduct(ctx, req)
}

func (q *Queries) UpdateProduct(ctx context.Context, req model.ProductEditRequest) error {
	return q.gw.UpdateProduct(ctx, req)
}

func (q *Queries) DeleteProduct(ctx context.Context, req model.ProductDeleteRequest) error {
	return q.gw.DeleteProduct(ctx, req)
}
