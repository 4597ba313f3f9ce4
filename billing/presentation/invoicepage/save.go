package invoicepage

import (
	"context"

	"admin.app/billing/model"
)

// Save validates the draft and persists it. No request is issued when the
// draft is invalid. A successful or partial save closes the form and runs
// the OnSaved hook; a failed save leaves the form open.
//
// In edit mode only the lines are sent: the backend has no header update,
// so changes to client or payment fields are not persisted.
func (f *Form) Save(ctx context.Context) (model.SaveOutcome, error) {
	if err := f.sm.RequireInteractive(); err != nil {
		return model.SaveOutcome{}, err
	}
	if err := f.draft.Validate(); err != nil {
		f.notify.Error("Validation", errMessage(err))
		return model.SaveOutcome{}, err
	}

	lines := f.draft.lineRequests()

	var (
		outcome model.SaveOutcome
		err     error
	)
	if f.sm.Editing() {
		outcome, err = f.saver.SaveLines(ctx, f.draft.InvoiceID, lines)
	} else {
		outcome, err = f.saver.SaveNew(ctx, f.headerRequest(), lines)
	}
	if err != nil {
		f.notify.Error("Invoice", errMessage(err))
		return outcome, err
	}

	if outcome.Partial {
		f.notify.Warning("Invoice", outcome.Message)
	} else {
		f.notify.Success("Invoice", outcome.Message)
	}

	f.Close()
	if f.onSaved != nil {
		if err := f.onSaved(ctx); err != nil {
			f.log.WithError(err).Warn("post-save refresh failed")
		}
	}
	return outcome, nil
}

func (f *Form) headerRequest() model.InvoiceRequest {
	return model.InvoiceRequest{
		Number:        model.NewDocumentNumber(f.now()),
		ClientID:      f.draft.ClientID,
		UserID:        f.userID,
		Total:         f.draft.Total.InexactFloat64(),
		PaymentMethod: f.draft.PaymentMethod,
		PaymentStatus: f.draft.PaymentStatus,
		Details:       []model.InvoiceDetailRequest{},
	}
}
