package billing

import (
	"context"
)

type DeleteInvoiceRequest struct {
	ID int `json:"id" validate:"required,gt=0"`
}

type DeleteInvoiceResponse struct {
	Deleted bool `json:"deleted"`
}

// DeleteInvoice deletes an invoice after the configured confirmer agrees.
func (s *Service) DeleteInvoice(ctx context.Context, req *DeleteInvoiceRequest) (*DeleteInvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	deleted, err := s.screen.Delete(ctx, req.ID)
	if err != nil {
		s.log.WithError(err).WithField("id", req.ID).Error("failed to delete invoice")
		return nil, err
	}

	return &DeleteInvoiceResponse{Deleted: deleted}, nil
}

// Validate implements validation for DeleteInvoiceRequest
func (r *DeleteInvoiceRequest) Validate() error {
	return validateStruct(r)
}
