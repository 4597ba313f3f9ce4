package billing

import (
	"context"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

type GetInvoiceResponse struct {
	Invoice *model.InvoiceFull `json:"invoice"`
}

func (s *Service) GetInvoice(ctx context.Context, id int) (*GetInvoiceResponse, error) {
	if id <= 0 {
		return nil, apperr.New(errs.InvalidArgument, "invalid invoice ID")
	}

	result, err := s.services.Invoice.GetInvoice(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("failed to get invoice")
		return nil, err
	}

	return &GetInvoiceResponse{
		Invoice: result,
	}, nil
}
