package api

import (
	"context"
	"strconv"

	"admin.app/billing/model"
)

type UserAPI struct {
	c *Client
}

func NewUserAPI(c *Client) *UserAPI {
	return &UserAPI{c: c}
}

func (a *UserAPI) GetUsers(ctx context.Context, filter model.UserFilter, pageNumber, pageSize int) (*model.Response[[]model.User], error) {
	q := pageQuery(pageNumber, pageSize)
	if filter.Active != nil {
		q.Set("Estado", strconv.FormatBool(*filter.Active))
	}
	if filter.Name != "" {
		q.Set("Nombre", filter.Name)
	}

	var resp model.Response[[]model.User]
	if err := a.c.post(ctx, "/ObtenerUsuarios", q, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *UserAPI) GetUserByID(ctx context.Context, id int) (*model.Response[*model.User], error) {
	var resp model.Response[*model.User]
	if err := a.c.post(ctx, "/ObtenerUsuario", idQuery(id), struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *UserAPI) CreateUser(ctx context.Context, req model.UserRequest) (*model.Ack, error) {
	var resp model.Ack
	if err := a.c.post(ctx, "/CrearUsuario", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *UserAPI) UpdateUser(ctx context.Context, req model.UserEditRequest) (*model.Ack, error) {
	var resp model.Ack
	if err := a.c.post(ctx, "/EditarUsuario", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteUser deactivates a user. The endpoint name is plural on the backend.
func (a *UserAPI) DeleteUser(ctx context.Context, id int) (*model.Ack, error) {
	var resp model.Ack
	if err := a.c.post(ctx, "/EliminarUsuarios", idQuery(id), struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
