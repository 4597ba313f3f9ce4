package invoicepage

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"admin.app/billing/model"
)

// OpenForEdit opens the form for an existing invoice and rebuilds its draft
// from the backend. The invoice detail carries no client or product ids, so
// both are recovered by matching display values against the loaded lists.
func (f *Form) OpenForEdit(ctx context.Context, summary model.InvoiceSummary) error {
	if err := f.sm.TransitionToEditLoading(); err != nil {
		return err
	}
	f.draft = Draft{InvoiceID: summary.ID}

	full, err := f.invoices.GetInvoice(ctx, summary.ID)
	if err != nil {
		f.sm.TransitionToClosed()
		f.draft = Draft{}
		f.log.WithError(err).WithField("invoice_id", summary.ID).Error("failed to load invoice for edit")
		f.notify.Error("Invoice", errMessage(err))
		return err
	}

	f.draft = f.rebuildDraft(summary.ID, full)
	if err := f.sm.TransitionToOpenEdit(); err != nil {
		return err
	}

	if f.draft.ClientID == 0 {
		f.log.WithField("client_name", full.ClientName).Warn("invoice client not found among loaded clients")
	}
	return nil
}

func (f *Form) rebuildDraft(id int, full *model.InvoiceFull) Draft {
	d := Draft{
		InvoiceID:     id,
		Date:          datePart(full.CreatedAt),
		Phone:         full.Phone,
		Email:         full.Email,
		PaymentMethod: full.PaymentMethod,
		PaymentStatus: full.PaymentStatus,
	}
	if !d.PaymentMethod.Valid() {
		f.log.WithField("payment_method", full.PaymentMethod).Warn("unknown payment method, using default")
		d.PaymentMethod = model.PaymentMethodCash
	}
	if !d.PaymentStatus.Valid() {
		f.log.WithField("payment_status", full.PaymentStatus).Warn("unknown payment status, using default")
		d.PaymentStatus = model.PaymentStatusPending
	}
	if c, ok := f.clientByName(full.ClientName); ok {
		d.ClientID = c.ID
	}

	for _, detail := range full.Lines {
		detailID := detail.DetailID
		l := LineItem{
			ProductName: detail.Description,
			Quantity:    detail.Quantity,
			UnitPrice:   decimal.NewFromFloat(detail.UnitPrice),
			DetailID:    &detailID,
		}
		if p, ok := f.productFor(detail); ok {
			l.ProductID = p.ID
			l.ProductName = p.Name
		} else {
			f.log.WithField("code", detail.Code).Warn("invoice line product not found among loaded products")
		}
		l.recompute()
		d.Lines = append(d.Lines, l)
	}
	if len(d.Lines) == 0 {
		d.Lines = []LineItem{newLineItem()}
	}

	d.recomputeTotal()
	return d
}

// productFor matches a persisted line by product code, falling back to the
// product name.
func (f *Form) productFor(detail model.InvoiceLine) (model.Product, bool) {
	if code := strings.TrimSpace(detail.Code); code != "" {
		for _, p := range f.productList {
			if strings.EqualFold(strings.TrimSpace(p.Code), code) {
				return p, true
			}
		}
	}
	name := strings.TrimSpace(detail.Description)
	if name == "" {
		return model.Product{}, false
	}
	for _, p := range f.productList {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) {
			return p, true
		}
	}
	return model.Product{}, false
}

func (f *Form) clientByName(name string) (model.Client, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Client{}, false
	}
	for _, c := range f.clientList {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return c, true
		}
	}
	return model.Client{}, false
}

// datePart keeps the calendar date of a backend timestamp.
func datePart(ts string) string {
	ts = strings.TrimSpace(ts)
	if len(ts) >= len(dateLayout) {
		return ts[:len(dateLayout)]
	}
	return ts
}
