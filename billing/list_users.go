package billing

import (
	"context"

	"admin.app/billing/model"
)

type ListUsersRequest struct {
	PageNumber int    `json:"page_number" validate:"gte=0"`
	PageSize   int    `json:"page_size" validate:"gte=0,lte=100"`
	Name       string `json:"name" validate:"max=100"`
	Active     *bool  `json:"active"`
}

type ListUsersResponse struct {
	Users []model.User `json:"users"`
}

func (s *Service) ListUsers(ctx context.Context, req *ListUsersRequest) (*ListUsersResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	pageNumber, pageSize := paging(req.PageNumber, req.PageSize, s.screen.PageSize)

	users, err := s.services.User.ListUsers(ctx, model.UserFilter{Active: req.Active, Name: req.Name}, pageNumber, pageSize)
	if err != nil {
		s.log.WithError(err).Error("failed to list users")
		return nil, err
	}

	return &ListUsersResponse{Users: users}, nil
}

// Validate implements validation for ListUsersRequest
func (r *ListUsersRequest) Validate() error {
	return validateStruct(r)
}
