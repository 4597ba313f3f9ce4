package workflow

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"admin.app/billing/apperr"
	"admin.app/billing/business/invoice"
	"admin.app/billing/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	InvoiceBusiness invoice.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(invoiceBusiness invoice.Business) {
	activityDeps = &ActivityDependencies{
		InvoiceBusiness: invoiceBusiness,
	}
}

func dependencies() (invoice.Business, error) {
	if activityDeps == nil || activityDeps.InvoiceBusiness == nil {
		return nil, temporal.NewNonRetryableApplicationError("activity dependencies not initialized", "DependencyError", nil)
	}
	return activityDeps.InvoiceBusiness, nil
}

// CreateInvoiceHeaderActivity creates the invoice header and returns its id
func CreateInvoiceHeaderActivity(ctx context.Context, header model.InvoiceRequest) (int, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing create invoice header activity", "number", header.Number, "clientID", header.ClientID)

	invoices, err := dependencies()
	if err != nil {
		logger.Error("Activity dependencies not set")
		return 0, err
	}

	id, err := invoices.CreateInvoice(ctx, header)
	if err != nil {
		logger.Error("Failed to create invoice header", "number", header.Number, "error", err)
		return 0, toApplicationError(err)
	}

	logger.Info("Successfully created invoice header", "invoiceID", id)
	return id, nil
}

// InsertInvoiceDetailsActivity attaches line items to an existing invoice
func InsertInvoiceDetailsActivity(ctx context.Context, lines []model.InvoiceLineRequest) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing insert invoice details activity", "lines", len(lines))

	invoices, err := dependencies()
	if err != nil {
		logger.Error("Activity dependencies not set")
		return err
	}

	if err := invoices.InsertInvoiceDetails(ctx, lines); err != nil {
		logger.Error("Failed to insert invoice details", "error", err)
		return toApplicationError(err)
	}

	logger.Info("Successfully inserted invoice details", "lines", len(lines))
	return nil
}

// toApplicationError carries the error code across the activity boundary as
// the application error type. Nothing is retried.
func toApplicationError(err error) error {
	var e *apperr.Error
	if !errors.As(err, &e) {
		return temporal.NewNonRetryableApplicationError(err.Error(), errs.Unknown.String(), nil)
	}
	return temporal.NewNonRetryableApplicationError(apperr.Message(err), e.Code().String(), nil)
}

var codesByName = func() map[string]errs.ErrCode {
	m := make(map[string]errs.ErrCode)
	for c := errs.OK; c <= errs.Unauthenticated; c++ {
		m[c.String()] = c
	}
	return m
}()

// fromApplicationError restores the error code carried by an activity or
// workflow failure.
func fromApplicationError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) {
		code, ok := codesByName[appErr.Type()]
		if !ok {
			code = errs.Unknown
		}
		return apperr.New(code, appErr.Message())
	}
	var canceled *temporal.CanceledError
	if errors.As(err, &canceled) {
		return apperr.New(errs.Canceled, "invoice save canceled")
	}
	return apperr.New(errs.Unavailable, err.Error())
}
