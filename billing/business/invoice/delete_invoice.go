package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
)

// DeleteInvoice deactivates an invoice on the backend.
func (b *business) DeleteInvoice(ctx context.Context, id int) error {
	if id <= 0 {
		return apperr.New(errs.InvalidArgument, "invoice id must be positive")
	}

	resp, err := b.invoiceRepo.DeleteInvoice(ctx, id)
	if err != nil {
		return err
	}
	return resp.Err("failed to delete invoice")
}
