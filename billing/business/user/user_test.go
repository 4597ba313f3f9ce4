package user

import (
	"context"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"admin.app/billing/apperr"
	"admin.app/billing/mocks/repository/user_repo"
	"admin.app/billing/model"
)

func TestListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := user_repo.NewMockQuerier(ctrl)
	business := NewUserBusiness(mockRepo)

	rows := []model.User{{ID: 1, FullName: "Luis Mora", Role: "Vendedor", Active: true}}

	testCases := []struct {
		name          string
		pageSize      int
		mockReturn    *model.Response[[]model.User]
		expectRepo    bool
		expectedRows  []model.User
		expectedError string
	}{
		{
			name:         "happy_case",
			pageSize:     100,
			mockReturn:   &model.Response[[]model.User]{Success: true, Data: rows},
			expectRepo:   true,
			expectedRows: rows,
		},
		{
			name:          "logical_failure",
			pageSize:      100,
			mockReturn:    &model.Response[[]model.User]{Success: false},
			expectRepo:    true,
			expectedError: "failed to list users",
		},
		{
			name:          "zero_page_size",
			pageSize:      0,
			expectedError: "must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expectRepo {
				mockRepo.EXPECT().GetUsers(gomock.Any(), model.UserFilter{}, 1, tc.pageSize).Return(tc.mockReturn, nil)
			}

			result, err := business.ListUsers(context.Background(), model.UserFilter{}, 1, tc.pageSize)

			if tc.expectedError == "" {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedRows, result)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}

func TestUserOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := user_repo.NewMockQuerier(ctrl)
	business := &business{userRepo: mockRepo}
	ctx := context.Background()

	mockRepo.EXPECT().GetUserByID(gomock.Any(), 1).
		Return(&model.Response[*model.User]{Success: true, Data: &model.User{ID: 1, UserName: "lmora"}}, nil)
	u, err := business.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "lmora", u.UserName)

	err = business.CreateUser(ctx, model.UserRequest{UserName: "lmora"})
	assert.Equal(t, errs.InvalidArgument, apperr.Code(err))

	req := model.UserRequest{UserName: "lmora", PasswordHash: "x", FirstName: "Luis", LastName: "Mora", Email: "l@x.com", Role: "Vendedor"}
	mockRepo.EXPECT().CreateUser(gomock.Any(), req).Return(&model.Ack{Success: true}, nil)
	assert.NoError(t, business.CreateUser(ctx, req))

	edit := model.UserEditRequest{ID: "1", FirstName: "Luis", LastName: "Mora", Email: "l@x.com", Role: "Admin"}
	mockRepo.EXPECT().UpdateUser(gomock.Any(), edit).Return(&model.Ack{Success: true}, nil)
	assert.NoError(t, business.UpdateUser(ctx, edit))

	mockRepo.EXPECT().DeleteUser(gomock.Any(), 1).Return(&model.Ack{Success: false, Message: "last admin"}, nil)
	err = business.DeleteUser(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last admin")
}
