package invoice

import (
	"context"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"admin.app/billing/apperr"
	"admin.app/billing/mocks/repository/invoice_repo"
	"admin.app/billing/model"
)

func TestListInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := invoice_repo.NewMockQuerier(ctrl)
	business := NewInvoiceBusiness(mockRepo)

	rows := []model.InvoiceSummary{{ID: 1, ClientName: "Ana", Total: 30}, {ID: 2, ClientName: "Beto", Total: 12.5}}

	testCases := []struct {
		name          string
		pageNumber    int
		mockReturn    *model.Response[[]model.InvoiceSummary]
		mockError     error
		expectRepo    bool
		expectedRows  []model.InvoiceSummary
		expectedError string
	}{
		{
			name:         "happy_case",
			pageNumber:   1,
			mockReturn:   &model.Response[[]model.InvoiceSummary]{Success: true, Data: rows},
			expectRepo:   true,
			expectedRows: rows,
		},
		{
			name:          "logical_failure",
			pageNumber:    1,
			mockReturn:    &model.Response[[]model.InvoiceSummary]{Success: false, Errors: []string{"bad filter"}},
			expectRepo:    true,
			expectedError: "bad filter",
		},
		{
			name:          "request_failure",
			pageNumber:    2,
			mockError:     apperr.New(errs.Unavailable, "backend unreachable"),
			expectRepo:    true,
			expectedError: "backend unreachable",
		},
		{
			name:          "page_zero",
			pageNumber:    0,
			expectedError: "must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expectRepo {
				mockRepo.EXPECT().
					GetInvoices(gomock.Any(), model.InvoiceFilter{}, tc.pageNumber, 10).
					Return(tc.mockReturn, tc.mockError)
			}

			result, err := business.ListInvoices(context.Background(), model.InvoiceFilter{}, tc.pageNumber, 10)

			if tc.expectedError == "" {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedRows, result)
			} else {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}

func TestGetInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := invoice_repo.NewMockQuerier(ctrl)
	business := &business{invoiceRepo: mockRepo}
	ctx := context.Background()

	full := &model.InvoiceFull{ClientName: "Ana", Lines: []model.InvoiceLine{{DetailID: 3, Code: "P-A", Quantity: 2}}}
	mockRepo.EXPECT().GetInvoiceByID(gomock.Any(), 42).
		Return(&model.Response[*model.InvoiceFull]{Success: true, Data: full}, nil)

	result, err := business.GetInvoice(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, full, result)

	mockRepo.EXPECT().GetInvoiceByID(gomock.Any(), 43).
		Return(&model.Response[*model.InvoiceFull]{Success: true}, nil)

	_, err = business.GetInvoice(ctx, 43)
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, apperr.Code(err))

	_, err = business.GetInvoice(ctx, 0)
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, apperr.Code(err))
}

func TestInsertInvoiceDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := invoice_repo.NewMockQuerier(ctrl)
	business := &business{invoiceRepo: mockRepo}

	lines := []model.InvoiceLineRequest{
		{InvoiceID: 42, ProductID: 1, Quantity: 3, UnitPrice: 10, Subtotal: 30},
	}

	testCases := []struct {
		name          string
		input         []model.InvoiceLineRequest
		mockReturn    *model.Ack
		expectRepo    bool
		expectedError string
	}{
		{
			name:       "happy_case",
			input:      lines,
			mockReturn: &model.Ack{Success: true},
			expectRepo: true,
		},
		{
			name:          "rejected",
			input:         lines,
			mockReturn:    &model.Ack{Success: false, Message: "stock exhausted"},
			expectRepo:    true,
			expectedError: "stock exhausted",
		},
		{
			name:       "forwarded_unchanged",
			input:      []model.InvoiceLineRequest{{ProductID: 1, Quantity: 1}},
			mockReturn: &model.Ack{Success: true},
			expectRepo: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expectRepo {
				mockRepo.EXPECT().InsertInvoiceDetails(gomock.Any(), tc.input).Return(tc.mockReturn, nil)
			}

			err := business.InsertInvoiceDetails(context.Background(), tc.input)

			if tc.expectedError == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}

func TestDeleteInvoiceAndDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := invoice_repo.NewMockQuerier(ctrl)
	business := &business{invoiceRepo: mockRepo}
	ctx := context.Background()

	mockRepo.EXPECT().DeleteInvoiceDetail(gomock.Any(), 3).Return(&model.Ack{Success: true}, nil)
	assert.NoError(t, business.DeleteInvoiceDetail(ctx, 3))

	mockRepo.EXPECT().DeleteInvoiceDetail(gomock.Any(), 4).Return(&model.Ack{Success: false}, nil)
	err := business.DeleteInvoiceDetail(ctx, 4)
	require.Error(t, err)
	assert.Equal(t, "failed to delete invoice detail", apperr.Message(err))

	mockRepo.EXPECT().DeleteInvoice(gomock.Any(), 42).Return(&model.Ack{Success: true}, nil)
	assert.NoError(t, business.DeleteInvoice(ctx, 42))

	mockRepo.EXPECT().DeleteInvoice(gomock.Any(), 43).Return(nil, apperr.New(errs.NotFound, "backend answered 404"))
	err = business.DeleteInvoice(ctx, 43)
	assert.Equal(t, errs.NotFound, apperr.Code(err))

	assert.Error(t, business.DeleteInvoice(ctx, -1))
	assert.Error(t, business.DeleteInvoiceDetail(ctx, 0))
}
