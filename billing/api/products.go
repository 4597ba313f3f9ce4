package api

import (
	"context"
	"encoding/json"

	"admin.app/billing/model"
)

// ProductAPI unwraps the envelope: callers receive the data payload directly
// and a logical failure surfaces as an error.
type ProductAPI struct {
	c *Client
}

func NewProductAPI(c *Client) *ProductAPI {
	return &ProductAPI{c: c}
}

// productEnvelope keeps Success as a pointer because the listing endpoint
// may answer with only a data field.
type productEnvelope[T any] struct {
	Success *bool    `json:"success"`
	Message string   `json:"message"`
	Data    T        `json:"data"`
	Errors  []string `json:"errors"`
}

func (e *productEnvelope[T]) err(fallback string) error {
	if e.Success == nil || *e.Success {
		return nil
	}
	r := model.Response[T]{Success: false, Message: e.Message, Errors: e.Errors}
	return r.Err(fallback)
}

func (a *ProductAPI) GetProducts(ctx context.Context) ([]model.Product, error) {
	var resp productEnvelope[[]model.Product]
	if err := a.c.get(ctx, "/ObtenerProductos", &resp); err != nil {
		return nil, err
	}
	if err := resp.err("failed to list products"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *ProductAPI) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	var resp productEnvelope[*model.Product]
	if err := a.c.post(ctx, "/ObtenerProducto", nil, model.ProductDeleteRequest{ID: id}, &resp); err != nil {
		return nil, err
	}
	if err := resp.err("failed to get product"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *ProductAPI) CreateProduct(ctx context.Context, req model.ProductCreateRequest) error {
	var resp productEnvelope[json.RawMessage]
	if err := a.c.post(ctx, "/CrearProducto", nil, req, &resp); err != nil {
		return err
	}
	return resp.err("failed to create product")
}

func (a *ProductAPI) UpdateProduct(ctx context.Context, req model.ProductEditRequest) error {
	var resp productEnvelope[json.RawMessage]
	if err := a.c.post(ctx, "/EditarProducto", nil, req, &resp); err != nil {
		return err
	}
	return resp.err("failed to update product")
}

func (a *ProductAPI) DeleteProduct(ctx context.Context, req model.ProductDeleteRequest) error {
	var resp productEnvelope[json.RawMessage]
	if err := a.c.post(ctx, "/EliminarProductos", nil, req, &resp); err != nil {
		return err
	}
	return resp.err("failed to delete product")
}
