// Package billing is the application facade over the invoice screen, the
// invoice form and the client, product and user use cases.
package billing

import (
	"time"

	"github.com/sirupsen/logrus"

	"admin.app/billing/presentation/invoicepage"
	"admin.app/billing/service"
)

// Options configures the facade. Zero values fall back to logging
// notifications, auto-confirming deletes and the in-process saver.
type Options struct {
	Notifier  invoicepage.Notifier
	Confirmer invoicepage.Confirmer
	Saver     invoicepage.Saver
	Logger    *logrus.Entry
	UserID    int
	PageSize  int
	Now       func() time.Time
}

type Service struct {
	services service.Services
	screen   *invoicepage.Screen
	form     *invoicepage.Form
	log      *logrus.Entry
}

func NewService(services service.Services, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	screen := invoicepage.NewScreen(invoicepage.ScreenConfig{
		Invoices:  services.Invoice,
		Clients:   services.Client,
		Users:     services.User,
		Notifier:  opts.Notifier,
		Confirmer: opts.Confirmer,
		Logger:    log,
		PageSize:  opts.PageSize,
	})

	form := invoicepage.NewForm(invoicepage.FormConfig{
		Invoices: services.Invoice,
		Clients:  services.Client,
		Products: services.Product,
		Saver:    opts.Saver,
		Notifier: opts.Notifier,
		Logger:   log,
		UserID:   opts.UserID,
		Now:      opts.Now,
		OnSaved:  screen.LoadInvoices,
	})

	return &Service{
		services: services,
		screen:   screen,
		form:     form,
		log:      log,
	}
}
