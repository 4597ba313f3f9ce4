package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
)

func (b *business) DeleteInvoiceDetail(ctx context.Context, detailID int) error {
	if detailID <= 0 {
		return apperr.New(errs.InvalidArgument, "detail id must be positive")
	}

	resp, err := b.invoiceRepo.DeleteInvoiceDetail(ctx, detailID)
	if err != nil {
		return err
	}
	return resp.Err("failed to delete invoice detail")
}
