package invoice

import (
	"context"

	"admin.app/billing/model"
)

// CreateInvoice creates the invoice header and returns the id the backend
// assigned to it. Line items are not sent here.
func (b *business) CreateInvoice(ctx context.Context, req model.InvoiceRequest) (int, error) {
	resp, err := b.invoiceRepo.CreateInvoice(ctx, req)
	if err != nil {
		return 0, err
	}
	if err := resp.Err("failed to create invoice"); err != nil {
		return 0, err
	}
	return model.ParseInvoiceID(resp.Data)
}
