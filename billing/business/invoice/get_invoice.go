package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

func (b *business) GetInvoice(ctx context.Context, id int) (*model.InvoiceFull, error) {
	if id <= 0 {
		return nil, apperr.New(errs.InvalidArgument, "invoice id must be positive")
	}

	resp, err := b.invoiceRepo.GetInvoiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := resp.Err("failed to get invoice"); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, apperr.New(errs.NotFound, "invoice not found")
	}
	return resp.Data, nil
}
