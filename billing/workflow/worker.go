package workflow

import (
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"admin.app/billing/business/invoice"
)

// NewWorker creates a worker polling taskQueue with the save workflow and its
// activities registered.
func NewWorker(c client.Client, taskQueue string, invoices invoice.Business) worker.Worker {
	SetActivityDependencies(invoices)

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(SaveInvoice)
	w.RegisterActivity(CreateInvoiceHeaderActivity)
	w.RegisterActivity(InsertInvoiceDetailsActivity)
	return w
}

// RunWorker blocks until interruptCh is closed or the worker fails.
func RunWorker(c client.Client, taskQueue string, invoices invoice.Business, interruptCh <-chan interface{}) error {
	return NewWorker(c, taskQueue, invoices).Run(interruptCh)
}
