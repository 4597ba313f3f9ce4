package invoicepage

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"admin.app/billing/mocks/business/client_business"
	"admin.app/billing/mocks/business/invoice_business"
	"admin.app/billing/mocks/business/product_business"
	"admin.app/billing/model"
)

type note struct {
	Kind    string
	Title   string
	Message string
}

type recordingNotifier struct {
	notes []note
}

func (n *recordingNotifier) Success(title, message string) {
	n.notes = append(n.notes, note{"success", title, message})
}

func (n *recordingNotifier) Error(title, message string) {
	n.notes = append(n.notes, note{"error", title, message})
}

func (n *recordingNotifier) Warning(title, message string) {
	n.notes = append(n.notes, note{"warning", title, message})
}

func (n *recordingNotifier) last() note {
	if len(n.notes) == 0 {
		return note{}
	}
	return n.notes[len(n.notes)-1]
}

type stubConfirmer struct {
	answer bool
	err    error
	asked  int
}

func (c *stubConfirmer) Confirm(context.Context, string, string) (bool, error) {
	c.asked++
	return c.answer, c.err
}

var (
	testNow = time.Date(2024, 6, 10, 9, 30, 0, 123_000_000, time.UTC)

	testClients = []model.Client{
		{ID: 5, Name: "Ana Torres", Phone: "555-1111", Email: "c@x.com", Active: true},
		{ID: 6, Name: "Beto Ruiz", Phone: "555-2222", Email: "b@x.com", Active: true},
	}
	testProducts = []model.Product{
		{ID: 1, Name: "Widget", Code: "P-A", UnitPrice: 10.00, Active: true},
		{ID: 2, Name: "Gadget", Code: "P-G", UnitPrice: 2.50, Active: true},
		{ID: 3, Name: "Gizmo", Code: "", UnitPrice: 0.10, Active: true},
	}
)

type formFixture struct {
	form     *Form
	invoices *invoice_business.MockBusiness
	clients  *client_business.MockBusiness
	products *product_business.MockBusiness
	notes    *recordingNotifier
	reloads  int
}

func newFormFixture(t *testing.T) *formFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	fx := &formFixture{
		invoices: invoice_business.NewMockBusiness(ctrl),
		clients:  client_business.NewMockBusiness(ctrl),
		products: product_business.NewMockBusiness(ctrl),
		notes:    &recordingNotifier{},
	}
	fx.form = NewForm(FormConfig{
		Invoices: fx.invoices,
		Clients:  fx.clients,
		Products: fx.products,
		Notifier: fx.notes,
		UserID:   1,
		Now:      func() time.Time { return testNow },
		OnSaved: func(context.Context) error {
			fx.reloads++
			return nil
		},
	})
	fx.form.clientList = testClients
	fx.form.productList = testProducts
	return fx
}
