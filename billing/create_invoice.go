package billing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

type LineRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

type CreateInvoiceRequest struct {
	ClientID      int                 `json:"client_id" validate:"required,gt=0"`
	PaymentMethod model.PaymentMethod `json:"payment_method" validate:"omitempty,oneof=Efectivo Tarjeta Transferencia"`
	PaymentStatus model.PaymentStatus `json:"payment_status" validate:"omitempty,oneof=Pendiente Pagada Cancelada"`
	Lines         []LineRequest       `json:"lines" validate:"required,min=1,dive"`
}

type SaveInvoiceResponse struct {
	Outcome model.SaveOutcome `json:"outcome"`
}

// CreateInvoice composes a new invoice through the invoice form and saves it.
func (s *Service) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*SaveInvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.form.LoadCatalogs(ctx); err != nil {
		return nil, err
	}
	if err := s.form.OpenForCreate(); err != nil {
		return nil, err
	}

	outcome, err := s.composeAndSave(ctx, func() error {
		if err := s.form.SelectClient(req.ClientID); err != nil {
			return err
		}
		if s.form.Draft().ClientID != req.ClientID {
			return apperr.New(errs.NotFound, fmt.Sprintf("client %d is not an active client", req.ClientID))
		}
		if req.PaymentMethod != "" {
			if err := s.form.SetPaymentMethod(req.PaymentMethod); err != nil {
				return err
			}
		}
		if req.PaymentStatus != "" {
			if err := s.form.SetPaymentStatus(req.PaymentStatus); err != nil {
				return err
			}
		}
		for i, l := range req.Lines {
			idx := 0
			if i > 0 {
				var err error
				if idx, err = s.form.AddLine(); err != nil {
					return err
				}
			}
			if err := s.setLine(idx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.WithError(err).Error("failed to create invoice")
		return nil, err
	}

	return &SaveInvoiceResponse{Outcome: outcome}, nil
}

// composeAndSave applies compose to the open form and saves it. The form is
// closed whenever the invoice does not end up saved.
func (s *Service) composeAndSave(ctx context.Context, compose func() error) (model.SaveOutcome, error) {
	if err := compose(); err != nil {
		s.form.Close()
		return model.SaveOutcome{}, err
	}
	outcome, err := s.form.Save(ctx)
	if err != nil {
		s.form.Close()
		return outcome, err
	}
	return outcome, nil
}

func (s *Service) setLine(idx int, l LineRequest) error {
	if err := s.form.SelectProduct(idx, l.ProductID); err != nil {
		return err
	}
	return s.form.SetQuantity(idx, l.Quantity)
}

// Validate implements validation for CreateInvoiceRequest
func (r *CreateInvoiceRequest) Validate() error {
	return validateStruct(r)
}
