package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"admin.app/billing/model"
)

// SaveInvoiceWorkflowParams describes one save. A nil Header saves lines for
// the existing InvoiceID.
type SaveInvoiceWorkflowParams struct {
	Header    *model.InvoiceRequest      `json:"header,omitempty"`
	InvoiceID int                        `json:"invoice_id,omitempty"`
	Lines     []model.InvoiceLineRequest `json:"lines"`
}

// SaveInvoice runs the two-phase invoice save. Activities are attempted
// once; a header that was created before its lines failed is reported as a
// partial outcome and never rolled back.
func SaveInvoice(ctx workflow.Context, params SaveInvoiceWorkflowParams) (model.SaveOutcome, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting save invoice workflow", "create", params.Header != nil, "invoiceID", params.InvoiceID, "lines", len(params.Lines))

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	})

	invoiceID := params.InvoiceID
	if params.Header != nil {
		if err := workflow.ExecuteActivity(ctx, CreateInvoiceHeaderActivity, *params.Header).Get(ctx, &invoiceID); err != nil {
			logger.Error("Failed to create invoice header", "error", err)
			return model.SaveOutcome{}, err
		}
	}

	err := workflow.ExecuteActivity(ctx, InsertInvoiceDetailsActivity, model.TagLines(params.Lines, invoiceID)).Get(ctx, nil)
	if err != nil {
		if params.Header != nil {
			logger.Warn("Invoice header created but lines were rejected", "invoiceID", invoiceID, "error", err)
			return model.PartialOutcome(invoiceID, fromApplicationError(err)), nil
		}
		logger.Error("Failed to save invoice lines", "invoiceID", invoiceID, "error", err)
		return model.SaveOutcome{InvoiceID: invoiceID}, err
	}

	message := "invoice updated"
	if params.Header != nil {
		message = "invoice created"
	}
	logger.Info("Save invoice workflow completed", "invoiceID", invoiceID)
	return model.SaveOutcome{InvoiceID: invoiceID, Message: message}, nil
}
