package invoicepage

import (
	"context"

	"github.com/sirupsen/logrus"

	"admin.app/billing/business/invoice"
	"admin.app/billing/model"
)

// Saver persists a composed invoice. A create issues the header first and
// the lines second; an edit only issues the lines.
type Saver interface {
	SaveNew(ctx context.Context, header model.InvoiceRequest, lines []model.InvoiceLineRequest) (model.SaveOutcome, error)
	SaveLines(ctx context.Context, invoiceID int, lines []model.InvoiceLineRequest) (model.SaveOutcome, error)
}

// SequentialSaver runs both phases in process, strictly one after the other.
// There is no rollback: a header whose lines fail stays on the backend and
// the outcome is reported as partial.
type SequentialSaver struct {
	invoices invoice.Business
	log      *logrus.Entry
}

var _ Saver = (*SequentialSaver)(nil)

func NewSequentialSaver(invoices invoice.Business, log *logrus.Entry) *SequentialSaver {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &SequentialSaver{invoices: invoices, log: log}
}

func (s *SequentialSaver) SaveNew(ctx context.Context, header model.InvoiceRequest, lines []model.InvoiceLineRequest) (model.SaveOutcome, error) {
	id, err := s.invoices.CreateInvoice(ctx, header)
	if err != nil {
		s.log.WithError(err).WithField("number", header.Number).Error("failed to create invoice header")
		return model.SaveOutcome{}, err
	}

	log := s.log.WithField("invoice_id", id)
	if err := s.invoices.InsertInvoiceDetails(ctx, model.TagLines(lines, id)); err != nil {
		log.WithError(err).Warn("invoice header created but lines were rejected")
		return model.PartialOutcome(id, err), nil
	}

	log.WithField("lines", len(lines)).Info("invoice created")
	return model.SaveOutcome{InvoiceID: id, Message: "invoice created"}, nil
}

func (s *SequentialSaver) SaveLines(ctx context.Context, invoiceID int, lines []model.InvoiceLineRequest) (model.SaveOutcome, error) {
	log := s.log.WithField("invoice_id", invoiceID)
	if err := s.invoices.InsertInvoiceDetails(ctx, model.TagLines(lines, invoiceID)); err != nil {
		log.WithError(err).Error("failed to save invoice lines")
		return model.SaveOutcome{InvoiceID: invoiceID}, err
	}

	log.WithField("lines", len(lines)).Info("invoice lines saved")
	return model.SaveOutcome{InvoiceID: invoiceID, Message: "invoice updated"}, nil
}
