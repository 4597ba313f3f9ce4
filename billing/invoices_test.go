package billing

import (
	"context"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"admin.app/billing/apperr"
	"admin.app/billing/domain"
	"admin.app/billing/model"
)

func TestListInvoices(t *testing.T) {
	amount := 30.0
	testCases := []struct {
		name           string
		request        *ListInvoicesRequest
		mockRows       []model.InvoiceSummary
		mockError      error
		expectCall     bool
		expectedPage   int
		expectedSize   int
		expectedFilter model.InvoiceFilter
		expectedNext   bool
		expectedError  string
	}{
		{
			name:         "defaults",
			request:      &ListInvoicesRequest{},
			mockRows:     make([]model.InvoiceSummary, 10),
			expectCall:   true,
			expectedPage: 1,
			expectedSize: 10,
			expectedNext: true,
		},
		{
			name:           "filtered_second_page",
			request:        &ListInvoicesRequest{PageNumber: 2, PageSize: 5, Number: "FAC-1", Date: "2024-06-10", Amount: &amount},
			mockRows:       make([]model.InvoiceSummary, 3),
			expectCall:     true,
			expectedPage:   2,
			expectedSize:   5,
			expectedFilter: model.InvoiceFilter{Number: "FAC-1", Date: "2024-06-10", Amount: &amount},
		},
		{
			name:          "bad_date",
			request:       &ListInvoicesRequest{Date: "10/06/2024"},
			expectedError: "Date",
		},
		{
			name:          "page_size_too_large",
			request:       &ListInvoicesRequest{PageSize: 500},
			expectedError: "PageSize",
		},
		{
			name:          "backend_failure",
			request:       &ListInvoicesRequest{},
			mockError:     apperr.New(errs.Unavailable, "backend unreachable"),
			expectCall:    true,
			expectedPage:  1,
			expectedSize:  10,
			expectedError: "backend unreachable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService(t, true)
			if tc.expectCall {
				m.invoice.EXPECT().
					ListInvoices(gomock.Any(), tc.expectedFilter, tc.expectedPage, tc.expectedSize).
					Return(tc.mockRows, tc.mockError)
			}

			resp, err := svc.ListInvoices(context.Background(), tc.request)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Nil(t, resp)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Len(t, resp.Invoices, len(tc.mockRows))
			assert.Equal(t, tc.expectedPage, resp.PageNumber)
			assert.Equal(t, tc.expectedSize, resp.PageSize)
			assert.Equal(t, tc.expectedNext, resp.HasNext)
		})
	}
}

func TestGetInvoice(t *testing.T) {
	svc, m := newTestService(t, true)

	m.invoice.EXPECT().GetInvoice(gomock.Any(), 42).Return(&model.InvoiceFull{ClientName: "Ana Torres"}, nil)

	resp, err := svc.GetInvoice(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Ana Torres", resp.Invoice.ClientName)

	_, err = svc.GetInvoice(context.Background(), 0)
	assert.Equal(t, errs.InvalidArgument, apperr.Code(err))
}

func TestCreateInvoice(t *testing.T) {
	svc, m := newTestService(t, true)
	m.expectCatalogs()

	gomock.InOrder(
		m.invoice.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req model.InvoiceRequest) (int, error) {
				assert.Equal(t, "FAC-1718000000123", req.Number)
				assert.Equal(t, 5, req.ClientID)
				assert.Equal(t, 3, req.UserID)
				assert.Equal(t, 35.0, req.Total)
				assert.Equal(t, model.PaymentMethodCard, req.PaymentMethod)
				assert.Equal(t, model.PaymentStatusPending, req.PaymentStatus)
				return 42, nil
			}),
		m.invoice.EXPECT().InsertInvoiceDetails(gomock.Any(), []model.InvoiceLineRequest{
			{InvoiceID: 42, ProductID: 1, Quantity: 3, UnitPrice: 10, Subtotal: 30},
			{InvoiceID: 42, ProductID: 2, Quantity: 2, UnitPrice: 2.5, Subtotal: 5},
		}).Return(nil),
		m.invoice.EXPECT().ListInvoices(gomock.Any(), gomock.Any(), 1, 10).Return(nil, nil),
	)

	resp, err := svc.CreateInvoice(context.Background(), &CreateInvoiceRequest{
		ClientID:      5,
		PaymentMethod: model.PaymentMethodCard,
		Lines:         []LineRequest{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.SaveOutcome{InvoiceID: 42, Message: "invoice created"}, resp.Outcome)
	assert.Equal(t, domain.FormStateClosed, svc.form.State())
}

func TestCreateInvoiceRejected(t *testing.T) {
	testCases := []struct {
		name          string
		request       *CreateInvoiceRequest
		loadCatalogs  bool
		expectedCode  errs.ErrCode
		expectedError string
	}{
		{
			name:          "no_lines",
			request:       &CreateInvoiceRequest{ClientID: 5},
			expectedCode:  errs.InvalidArgument,
			expectedError: "Lines",
		},
		{
			name:          "zero_quantity",
			request:       &CreateInvoiceRequest{ClientID: 5, Lines: []LineRequest{{ProductID: 1}}},
			expectedCode:  errs.InvalidArgument,
			expectedError: "Quantity",
		},
		{
			name:          "bad_payment_method",
			request:       &CreateInvoiceRequest{ClientID: 5, PaymentMethod: "Cheque", Lines: []LineRequest{{ProductID: 1, Quantity: 1}}},
			expectedCode:  errs.InvalidArgument,
			expectedError: "PaymentMethod",
		},
		{
			name:          "inactive_client",
			request:       &CreateInvoiceRequest{ClientID: 9, Lines: []LineRequest{{ProductID: 1, Quantity: 1}}},
			loadCatalogs:  true,
			expectedCode:  errs.NotFound,
			expectedError: "client 9 is not an active client",
		},
		{
			name:          "unknown_product",
			request:       &CreateInvoiceRequest{ClientID: 5, Lines: []LineRequest{{ProductID: 1, Quantity: 1}, {ProductID: 99, Quantity: 1}}},
			loadCatalogs:  true,
			expectedCode:  errs.NotFound,
			expectedError: "product 99 is not loaded",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService(t, true)
			if tc.loadCatalogs {
				m.expectCatalogs()
			}

			resp, err := svc.CreateInvoice(context.Background(), tc.request)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, tc.expectedCode, apperr.Code(err))
			assert.Contains(t, err.Error(), tc.expectedError)
			assert.Equal(t, domain.FormStateClosed, svc.form.State())
		})
	}
}

func TestCreateInvoiceSaveFailureClosesForm(t *testing.T) {
	svc, m := newTestService(t, true)
	m.expectCatalogs()
	m.invoice.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(0, apperr.New(errs.Unavailable, "backend unreachable"))

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceRequest{
		ClientID: 5,
		Lines:    []LineRequest{{ProductID: 1, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, domain.FormStateClosed, svc.form.State())

	m.expectCatalogs()
	m.invoice.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(43, nil)
	m.invoice.EXPECT().InsertInvoiceDetails(gomock.Any(), gomock.Any()).Return(nil)
	m.invoice.EXPECT().ListInvoices(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	resp, err := svc.CreateInvoice(context.Background(), &CreateInvoiceRequest{
		ClientID: 5,
		Lines:    []LineRequest{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 43, resp.Outcome.InvoiceID)
}

func TestEditInvoice(t *testing.T) {
	svc, m := newTestService(t, true)
	m.expectCatalogs()

	m.invoice.EXPECT().GetInvoice(gomock.Any(), 42).Return(&model.InvoiceFull{
		ClientName:    "Ana Torres",
		PaymentMethod: model.PaymentMethodCash,
		PaymentStatus: model.PaymentStatusPending,
		Lines: []model.InvoiceLine{
			{DetailID: 31, Code: "P-A", Quantity: 2, Description: "Widget", UnitPrice: 10},
			{DetailID: 32, Code: "P-G", Quantity: 1, Description: "Gadget", UnitPrice: 2.5},
		},
	}, nil)
	gomock.InOrder(
		m.invoice.EXPECT().DeleteInvoiceDetail(gomock.Any(), 32).Return(nil),
		m.invoice.EXPECT().InsertInvoiceDetails(gomock.Any(), []model.InvoiceLineRequest{
			{InvoiceID: 42, ProductID: 1, Quantity: 2, UnitPrice: 10, Subtotal: 20, DetailID: intPtr(31)},
			{InvoiceID: 42, ProductID: 2, Quantity: 4, UnitPrice: 2.5, Subtotal: 10},
		}).Return(nil),
		m.invoice.EXPECT().ListInvoices(gomock.Any(), gomock.Any(), 1, 10).Return(nil, nil),
	)
	m.invoice.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Times(0)

	resp, err := svc.EditInvoice(context.Background(), &EditInvoiceRequest{
		InvoiceID:       42,
		RemoveDetailIDs: []int{32},
		AddLines:        []LineRequest{{ProductID: 2, Quantity: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.SaveOutcome{InvoiceID: 42, Message: "invoice updated"}, resp.Outcome)
}

func TestEditInvoiceUnknownDetail(t *testing.T) {
	svc, m := newTestService(t, true)
	m.expectCatalogs()
	m.invoice.EXPECT().GetInvoice(gomock.Any(), 42).Return(&model.InvoiceFull{
		ClientName: "Ana Torres",
		Lines:      []model.InvoiceLine{{DetailID: 31, Code: "P-A", Quantity: 2, UnitPrice: 10}},
	}, nil)

	_, err := svc.EditInvoice(context.Background(), &EditInvoiceRequest{InvoiceID: 42, RemoveDetailIDs: []int{77}})
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, apperr.Code(err))
	assert.Equal(t, domain.FormStateClosed, svc.form.State())
}

func TestDeleteInvoice(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		svc, m := newTestService(t, true)
		m.invoice.EXPECT().DeleteInvoice(gomock.Any(), 42).Return(nil)
		m.invoice.EXPECT().ListInvoices(gomock.Any(), gomock.Any(), 1, 10).Return(nil, nil)

		resp, err := svc.DeleteInvoice(context.Background(), &DeleteInvoiceRequest{ID: 42})
		require.NoError(t, err)
		assert.True(t, resp.Deleted)
	})

	t.Run("declined", func(t *testing.T) {
		svc, _ := newTestService(t, false)

		resp, err := svc.DeleteInvoice(context.Background(), &DeleteInvoiceRequest{ID: 42})
		require.NoError(t, err)
		assert.False(t, resp.Deleted)
	})

	t.Run("invalid", func(t *testing.T) {
		svc, _ := newTestService(t, true)

		_, err := svc.DeleteInvoice(context.Background(), &DeleteInvoiceRequest{})
		assert.Equal(t, errs.InvalidArgument, apperr.Code(err))
	})
}
