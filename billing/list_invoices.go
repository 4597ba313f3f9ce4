package billing

import (
	"context"

	"admin.app/billing/model"
)

type ListInvoicesRequest struct {
	PageNumber int      `json:"page_number" validate:"gte=0"`
	PageSize   int      `json:"page_size" validate:"gte=0,lte=100"`
	Number     string   `json:"number" validate:"max=50"`
	Date       string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount     *float64 `json:"amount" validate:"omitempty,gte=0"`
	Active     *bool    `json:"active"`
}

type ListInvoicesResponse struct {
	Invoices   []model.InvoiceSummary `json:"invoices"`
	PageNumber int                    `json:"page_number"`
	PageSize   int                    `json:"page_size"`
	HasNext    bool                   `json:"has_next"`
}

// ListInvoices loads one page of the invoice list. Page number and size
// default to the first page and the configured page size.
func (s *Service) ListInvoices(ctx context.Context, req *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.PageSize > 0 {
		s.screen.PageSize = req.PageSize
	}
	filter := model.InvoiceFilter{
		Number: req.Number,
		Date:   req.Date,
		Amount: req.Amount,
		Active: req.Active,
	}
	s.screen.Filter = filter
	s.screen.PageNumber = 1
	if req.PageNumber > 1 {
		s.screen.PageNumber = req.PageNumber
	}

	if err := s.screen.LoadInvoices(ctx); err != nil {
		s.log.WithError(err).Error("failed to list invoices")
		return nil, err
	}

	return &ListInvoicesResponse{
		Invoices:   s.screen.Invoices,
		PageNumber: s.screen.PageNumber,
		PageSize:   s.screen.PageSize,
		HasNext:    !s.screen.DisableNext,
	}, nil
}

// Validate implements validation for ListInvoicesRequest
func (r *ListInvoicesRequest) Validate() error {
	return validateStruct(r)
}
