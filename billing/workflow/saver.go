package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.temporal.io/sdk/client"

	"admin.app/billing/model"
)

// Saver runs invoice saves as SaveInvoice workflow executions and waits for
// their outcome.
type Saver struct {
	temporal  client.Client
	taskQueue string
	log       *logrus.Entry
}

func NewSaver(c client.Client, taskQueue string, log *logrus.Entry) *Saver {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Saver{temporal: c, taskQueue: taskQueue, log: log.WithField("component", "workflow_saver")}
}

func (s *Saver) SaveNew(ctx context.Context, header model.InvoiceRequest, lines []model.InvoiceLineRequest) (model.SaveOutcome, error) {
	return s.run(ctx, fmt.Sprintf("invoice-create-%s", uuid.NewString()), SaveInvoiceWorkflowParams{
		Header: &header,
		Lines:  lines,
	})
}

func (s *Saver) SaveLines(ctx context.Context, invoiceID int, lines []model.InvoiceLineRequest) (model.SaveOutcome, error) {
	return s.run(ctx, fmt.Sprintf("invoice-%d-lines-%s", invoiceID, uuid.NewString()), SaveInvoiceWorkflowParams{
		InvoiceID: invoiceID,
		Lines:     lines,
	})
}

func (s *Saver) run(ctx context.Context, workflowID string, params SaveInvoiceWorkflowParams) (model.SaveOutcome, error) {
	log := s.log.WithField("workflow_id", workflowID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: s.taskQueue,
	}
	run, err := s.temporal.ExecuteWorkflow(ctx, options, SaveInvoice, params)
	if err != nil {
		log.WithError(err).Error("failed to start save invoice workflow")
		return model.SaveOutcome{}, fromApplicationError(err)
	}

	var outcome model.SaveOutcome
	if err := run.Get(ctx, &outcome); err != nil {
		log.WithError(err).Error("save invoice workflow failed")
		return outcome, fromApplicationError(err)
	}

	log.WithFields(logrus.Fields{"invoice_id": outcome.InvoiceID, "partial": outcome.Partial}).Info("save invoice workflow completed")
	return outcome, nil
}
