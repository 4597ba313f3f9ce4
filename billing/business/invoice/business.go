package invoice

//go:generate mockgen -source=business.go -destination=../../mocks/business/invoice_business/business.go -package=invoice_business

import (
	"context"

	"admin.app/billing/model"
	"admin.app/billing/repository/invoices"
)

type Business interface {
	ListInvoices(ctx context.Context, filter model.InvoiceFilter, pageNumber, pageSize int) ([]model.InvoiceSummary, error)
	GetInvoice(ctx context.Context, id int) (*model.InvoiceFull, error)
	CreateInvoice(ctx context.Context, req model.InvoiceRequest) (int, error)
	InsertInvoiceDetails(ctx context.Context, lines []model.InvoiceLineRequest) error
	DeleteInvoiceDetail(ctx context.Context, detailID int) error
	DeleteInvoice(ctx context.Context, id int) error
}

// business handles invoice headers and their line items
type business struct {
	invoiceRepo invoices.Querier
}

// NewInvoiceBusiness creates the invoice business layer
func NewInvoiceBusiness(invoiceRepo invoices.Querier) Business {
	return &business{
		invoiceRepo: invoiceRepo,
	}
}
