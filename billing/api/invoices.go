package api

import (
	"context"
	"strconv"

	"admin.app/billing/model"
)

// InvoiceAPI is the gateway for invoice headers and their line items.
type InvoiceAPI struct {
	c *Client
}

func NewInvoiceAPI(c *Client) *InvoiceAPI {
	return &InvoiceAPI{c: c}
}

func (a *InvoiceAPI) GetInvoices(ctx context.Context, filter model.InvoiceFilter, pageNumber, pageSize int) (*model.Response[[]model.InvoiceSummary], error) {
	q := pageQuery(pageNumber, pageSize)
	if filter.Number != "" {
		q.Set("FiltroNumeroFactura", filter.Number)
	}
	if filter.Date != "" {
		q.Set("FiltroFecha", filter.Date)
	}
	if filter.Amount != nil {
		q.Set("FiltroMonto", strconv.FormatFloat(*filter.Amount, 'f', -1, 64))
	}
	if filter.Active != nil {
		q.Set("FiltroEstado", strconv.FormatBool(*filter.Active))
	}

	var resp model.Response[[]model.InvoiceSummary]
	if err := a.c.post(ctx, "/ObtenerFacturas", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *InvoiceAPI) GetInvoiceByID(ctx context.Context, id int) (*model.Response[*model.InvoiceFull], error) {
	var resp model.Response[*model.InvoiceFull]
	if err := a.c.post(ctx, "/ObtenerFactura", idQuery(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *InvoiceAPI) CreateInvoice(ctx context.Context, req model.InvoiceRequest) (*model.Ack, error) {
	if req.Details == nil {
		req.Details = []model.InvoiceDetailRequest{}
	}
	var resp model.Ack
	if err := a.c.post(ctx, "/CrearFactura", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *InvoiceAPI) InsertInvoiceDetails(ctx context.Context, lines []model.InvoiceLineRequest) (*model.Ack, error) {
	var resp model.Ack
	if err := a.c.post(ctx, "/InsertarDetalleFactura", nil, lines, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *InvoiceAPI) DeleteInvoiceDetail(ctx context.Context, id int) (*model.Ack, error) {
	var resp model.Ack
	if err := a.c.post(ctx, "/EliminarDetalleFactura", idQuery(id), struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *InvoiceAPI) DeleteInvoice(ctx context.Context, id int) (*model.Ack, error) {
	var resp model.Ack
	if err := a.c.post(ctx, "/EliminarFactura", idQuery(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
