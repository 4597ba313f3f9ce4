package billing

import (
	"context"

	"admin.app/billing/model"
)

type ListClientsRequest struct {
	PageNumber int    `json:"page_number" validate:"gte=0"`
	PageSize   int    `json:"page_size" validate:"gte=0,lte=100"`
	Name       string `json:"name" validate:"max=150"`
	Active     *bool  `json:"active"`
}

type ListClientsResponse struct {
	Clients []model.Client `json:"clients"`
}

func (s *Service) ListClients(ctx context.Context, req *ListClientsRequest) (*ListClientsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	pageNumber, pageSize := paging(req.PageNumber, req.PageSize, s.screen.PageSize)

	clients, err := s.services.Client.ListClients(ctx, model.ClientFilter{Active: req.Active, Name: req.Name}, pageNumber, pageSize)
	if err != nil {
		s.log.WithError(err).Error("failed to list clients")
		return nil, err
	}

	return &ListClientsResponse{Clients: clients}, nil
}

// Validate implements validation for ListClientsRequest
func (r *ListClientsRequest) Validate() error {
	return validateStruct(r)
}

func paging(pageNumber, pageSize, defaultSize int) (int, int) {
	if pageNumber <= 0 {
		pageNumber = 1
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	return pageNumber, pageSize
}
