package api

import (
	"context"
	"strconv"

	"admin.app/billing/model"
)

type ClientAPI struct {
	c *Client
}

func NewClientAPI(c *Client) *ClientAPI {
	return &ClientAPI{c: c}
}

func (a *ClientAPI) GetClients(ctx context.Context, filter model.ClientFilter, pageNumber, pageSize int) (*model.Response[[]model.Client], error) {
	q := pageQuery(pageNumber, pageSize)
	if filter.Active != nil {
		q.Set("Estado", strconv.FormatBool(*filter.Active))
	}
	if filter.Name != "" {
		q.Set("Nombre", filter.Name)
	}

	var resp model.Response[[]model.Client]
	if err := a.c.post(ctx, "/ObtenerClientes", q, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *ClientAPI) GetClientByID(ctx context.Context, id int) (*model.Response[*model.Client], error) {
	var resp model.Response[*model.Client]
	if err := a.c.post(ctx, "/ObtenerCliente", idQuery(id), struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *ClientAPI) CreateClient(ctx context.Context, req model.ClientRequest) (*model.Ack, error) {
	var resp model.Ack
	if err := a.c.post(ctx, "/CrearCliente", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *ClientAPI) UpdateClient(ctx context.Context, req model.ClientEditRequest) (*model.Ack, error) {
	var resp model.Ack
	if err := a.c.post(ctx, "/EditarCliente", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *ClientAPI) DeleteClient(ctx context.Context, id int) (*model.Ack, error) {
	var resp model.Ack
	if err := a.c.post(ctx, "/EliminarCliente", idQuery(id), struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
