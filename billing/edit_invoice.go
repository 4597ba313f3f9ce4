package billing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
	"admin.app/billing/presentation/invoicepage"
)

type EditInvoiceRequest struct {
	InvoiceID int `json:"invoice_id" validate:"required,gt=0"`
	// RemoveDetailIDs lists persisted lines to delete before saving.
	RemoveDetailIDs []int `json:"remove_detail_ids" validate:"dive,gt=0"`
	// AddLines are appended to the existing lines.
	AddLines []LineRequest `json:"add_lines" validate:"dive"`
}

// EditInvoice reopens an existing invoice in the form, applies the line
// changes and saves its lines. Header fields cannot be changed.
func (s *Service) EditInvoice(ctx context.Context, req *EditInvoiceRequest) (*SaveInvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.form.LoadCatalogs(ctx); err != nil {
		return nil, err
	}
	if err := s.form.OpenForEdit(ctx, model.InvoiceSummary{ID: req.InvoiceID}); err != nil {
		return nil, err
	}

	outcome, err := s.composeAndSave(ctx, func() error {
		for _, detailID := range req.RemoveDetailIDs {
			idx := lineIndex(s.form.Draft().Lines, detailID)
			if idx < 0 {
				return apperr.New(errs.NotFound, fmt.Sprintf("invoice %d has no line %d", req.InvoiceID, detailID))
			}
			if err := s.form.RemoveLine(ctx, idx); err != nil {
				return err
			}
		}
		for _, l := range req.AddLines {
			idx, err := s.form.AddLine()
			if err != nil {
				return err
			}
			if err := s.setLine(idx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.WithError(err).WithField("invoice_id", req.InvoiceID).Error("failed to edit invoice")
		return nil, err
	}

	return &SaveInvoiceResponse{Outcome: outcome}, nil
}

func lineIndex(lines []invoicepage.LineItem, detailID int) int {
	for i, l := range lines {
		if l.DetailID != nil && *l.DetailID == detailID {
			return i
		}
	}
	return -1
}

// Validate implements validation for EditInvoiceRequest
func (r *EditInvoiceRequest) Validate() error {
	return validateStruct(r)
}
