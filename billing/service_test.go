package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"admin.app/billing/mocks/business/client_business"
	"admin.app/billing/mocks/business/invoice_business"
	"admin.app/billing/mocks/business/product_business"
	"admin.app/billing/mocks/business/user_business"
	"admin.app/billing/model"
	"admin.app/billing/service"
)

type stubConfirmer struct {
	answer bool
}

func (c stubConfirmer) Confirm(context.Context, string, string) (bool, error) {
	return c.answer, nil
}

type discardNotifier struct{}

func (discardNotifier) Success(string, string) {}
func (discardNotifier) Error(string, string)   {}
func (discardNotifier) Warning(string, string) {}

type mocks struct {
	invoice *invoice_business.MockBusiness
	client  *client_business.MockBusiness
	product *product_business.MockBusiness
	user    *user_business.MockBusiness
}

func newTestService(t *testing.T, confirm bool) (*Service, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mocks{
		invoice: invoice_business.NewMockBusiness(ctrl),
		client:  client_business.NewMockBusiness(ctrl),
		product: product_business.NewMockBusiness(ctrl),
		user:    user_business.NewMockBusiness(ctrl),
	}
	svc := NewService(service.Services{
		Invoice: m.invoice,
		Client:  m.client,
		Product: m.product,
		User:    m.user,
	}, Options{
		Notifier:  discardNotifier{},
		Confirmer: stubConfirmer{answer: confirm},
		UserID:    3,
		PageSize:  10,
		Now:       func() time.Time { return time.UnixMilli(1718000000123) },
	})
	return svc, m
}

func (m mocks) expectCatalogs() {
	m.client.EXPECT().ListClients(gomock.Any(), gomock.Any(), 1, 100).Return([]model.Client{
		{ID: 5, Name: "Ana Torres", Phone: "555-1111", Email: "c@x.com", Active: true},
	}, nil)
	m.product.EXPECT().ListProducts(gomock.Any()).Return([]model.Product{
		{ID: 1, Name: "Widget", Code: "P-A", UnitPrice: 10},
		{ID: 2, Name: "Gadget", Code: "P-G", UnitPrice: 2.5},
	}, nil)
}

func intPtr(i int) *int { return &i }

func TestNewService(t *testing.T) {
	svc, _ := newTestService(t, true)
	require.NotNil(t, svc.screen)
	require.NotNil(t, svc.form)
	require.Equal(t, 10, svc.screen.PageSize)
}
