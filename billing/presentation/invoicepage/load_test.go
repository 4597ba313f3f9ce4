package invoicepage

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

func editedInvoice() *model.InvoiceFull {
	return &model.InvoiceFull{
		ClientName:    "ana torres",
		Phone:         "555-9999",
		Email:         "ana@old.com",
		Seller:        "Luis Mora",
		CreatedAt:     "2024-05-02T14:03:11",
		PaymentMethod: model.PaymentMethodCard,
		PaymentStatus: model.PaymentStatusPaid,
		Lines: []model.InvoiceLine{
			{DetailID: 31, Code: "P-A", Quantity: 2, Description: "Widget (old name)", UnitPrice: 10, Subtotal: 20},
			{DetailID: 32, Code: "", Quantity: 2, Description: "Gadget", UnitPrice: 2.5, Subtotal: 999},
		},
	}
}

func openedForEdit(t *testing.T) *formFixture {
	t.Helper()
	fx := newFormFixture(t)
	fx.invoices.EXPECT().GetInvoice(gomock.Any(), 42).Return(editedInvoice(), nil)
	require.NoError(t, fx.form.OpenForEdit(context.Background(), model.InvoiceSummary{ID: 42}))
	return fx
}

func TestForm_OpenForEdit(t *testing.T) {
	fx := openedForEdit(t)

	assert.Equal(t, domain.FormStateOpenEdit, fx.form.State())

	d := fx.form.Draft()
	assert.Equal(t, 42, d.InvoiceID)
	assert.Equal(t, 5, d.ClientID)
	assert.Equal(t, "555-9999", d.Phone)
	assert.Equal(t, "ana@old.com", d.Email)
	assert.Equal(t, "2024-05-02", d.Date)
	assert.Equal(t, model.PaymentMethodCard, d.PaymentMethod)
	assert.Equal(t, model.PaymentStatusPaid, d.PaymentStatus)

	require.Len(t, d.Lines, 2)
	assert.Equal(t, 1, d.Lines[0].ProductID, "joined by code")
	assert.Equal(t, "Widget", d.Lines[0].ProductName)
	assert.Equal(t, 31, *d.Lines[0].DetailID)
	assert.Equal(t, 2, d.Lines[1].ProductID, "joined by name")
	assert.Equal(t, "5", d.Lines[1].Subtotal.String(), "subtotal recomputed")
	assert.Equal(t, "25", d.Total.String())
}

func TestForm_OpenForEditBestEffortJoins(t *testing.T) {
	fx := newFormFixture(t)
	full := &model.InvoiceFull{
		ClientName:    "Nobody",
		PaymentMethod: "efectivo",
		Lines: []model.InvoiceLine{
			{DetailID: 7, Code: "X-1", Quantity: 1, Description: "Discontinued", UnitPrice: 4},
		},
	}
	fx.invoices.EXPECT().GetInvoice(gomock.Any(), 8).Return(full, nil)

	require.NoError(t, fx.form.OpenForEdit(context.Background(), model.InvoiceSummary{ID: 8}))

	d := fx.form.Draft()
	assert.Zero(t, d.ClientID)
	require.Len(t, d.Lines, 1)
	assert.Zero(t, d.Lines[0].ProductID)
	assert.Equal(t, "Discontinued", d.Lines[0].ProductName)
	assert.Equal(t, "4", d.Total.String())
	assert.Equal(t, model.PaymentMethodCash, d.PaymentMethod)
	assert.Equal(t, model.PaymentStatusPending, d.PaymentStatus)
}

func TestForm_OpenForEditWithoutLines(t *testing.T) {
	fx := newFormFixture(t)
	fx.invoices.EXPECT().GetInvoice(gomock.Any(), 9).Return(&model.InvoiceFull{ClientName: "Beto Ruiz"}, nil)

	require.NoError(t, fx.form.OpenForEdit(context.Background(), model.InvoiceSummary{ID: 9}))

	d := fx.form.Draft()
	assert.Equal(t, 6, d.ClientID)
	require.Len(t, d.Lines, 1)
	assert.Nil(t, d.Lines[0].DetailID)
}

func TestForm_OpenForEditFailure(t *testing.T) {
	fx := newFormFixture(t)
	fx.invoices.EXPECT().GetInvoice(gomock.Any(), 42).
		Return(nil, apperr.New(errs.NotFound, "invoice not found"))

	err := fx.form.OpenForEdit(context.Background(), model.InvoiceSummary{ID: 42})

	require.Error(t, err)
	assert.Equal(t, domain.FormStateClosed, fx.form.State())
	assert.Equal(t, note{"error", "Invoice", "invoice not found"}, fx.notes.last())

	fx.invoices.EXPECT().GetInvoice(gomock.Any(), 42).Return(editedInvoice(), nil)
	require.NoError(t, fx.form.OpenForEdit(context.Background(), model.InvoiceSummary{ID: 42}))
}

func TestForm_OpenForEditWhileOpen(t *testing.T) {
	fx := newFormFixture(t)
	require.NoError(t, fx.form.OpenForCreate())

	err := fx.form.OpenForEdit(context.Background(), model.InvoiceSummary{ID: 42})
	assert.Equal(t, errs.InvalidArgument, apperr.Code(err))
	assert.Equal(t, domain.FormStateOpenCreate, fx.form.State())
}
