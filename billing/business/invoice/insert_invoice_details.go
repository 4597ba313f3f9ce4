package invoice

import (
	"context"

	"admin.app/billing/model"
)

// InsertInvoiceDetails attaches lines to an existing invoice in one request.
func (b *business) InsertInvoiceDetails(ctx context.Context, lines []model.InvoiceLineRequest) error {
	resp, err := b.invoiceRepo.InsertInvoiceDetails(ctx, lines)
	if err != nil {
		return err
	}
	return resp.Err("failed to insert invoice details")
}
