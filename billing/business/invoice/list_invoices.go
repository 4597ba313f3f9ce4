package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

// ListInvoices returns one page of invoice rows matching filter.
func (b *business) ListInvoices(ctx context.Context, filter model.InvoiceFilter, pageNumber, pageSize int) ([]model.InvoiceSummary, error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, apperr.New(errs.InvalidArgument, "page number and page size must be positive")
	}

	resp, err := b.invoiceRepo.GetInvoices(ctx, filter, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	if err := resp.Err("failed to list invoices"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
