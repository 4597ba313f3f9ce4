package invoices

//go:generate mockgen -source=querier.go -destination=../../mocks/repository/invoice_repo/querier.go -package=invoice_repo

import (
	"context"

	"admin.app/billing/api"
	"admin.app/billing/model"
)

type Querier interface {
	GetInvoices(ctx context.Context, filter model.InvoiceFilter, pageNumber, pageSize int) (*model.Response[[]model.InvoiceSummary], error)
	GetInvoiceByID(ctx context.Context, id int) (*model.Response[*model.InvoiceFull], error)
	CreateInvoice(ctx context.Context, req model.InvoiceRequest) (*model.Ack, error)
	InsertInvoiceDetails(ctx context.Context, lines []model.InvoiceLineRequest) (*model.Ack, error)
	DeleteInvoiceDetail(ctx context.Context, id int) (*model.Ack, error)
	DeleteInvoice(ctx context.Context, id int) (*model.Ack, error)
}

var _ Querier = (*Queries)(nil)

// Queries forwards every call to the invoice gateway unchanged.
type Queries struct {
	gw *api.InvoiceAPI
}

func New(c *api.Client) *Queries {
	return &Queries{gw: api.NewInvoiceAPI(c)}
}

func (q *Queries) GetInvoices(ctx context.Context, filter model.InvoiceFilter, pageNumber, pageSize int) (*model.Response[[]model.InvoiceSummary], error) {
	return q.gw.GetInvoices(ctx, filter, pageNumber, pageSize)
}

func (q *Queries) GetInvoiceByID(ctx context.Context, id int) (*model.Response[*model.InvoiceFull], error) {
	return q.gw.GetInvoiceByID(ctx, id)
}

func (q *Queries) CreateInvoice(ctx context.Context, req model.InvoiceRequest) (*model.Ack, error) {
	return q.gw.CreateInvoice(ctx, req)
}

func (q *Queries) InsertInvoiceDetails(ctx context.Context, lines []model.InvoiceLineRequest) (*model.Ack, error) {
	return q.gw.InsertInvoiceDetails(ctx, lines)
}

func (q *Queries) DeleteInvoiceDetail(ctx context.Context, id int) (*model.Ack, error) {
	return q.gw.DeleteInvoiceDetail(ctx, id)
}

func (q *Queries) DeleteInvoice(ctx context.Context, id int) (*model.Ack, error) {
	return q.gw.DeleteInvoice(ctx, id)
}
