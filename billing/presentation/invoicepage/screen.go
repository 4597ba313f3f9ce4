package invoicepage

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"admin.app/billing/business/client"
	"admin.app/billing/business/invoice"
	"admin.app/billing/business/user"
	"admin.app/billing/model"
)

const DefaultPageSize = 10

type ScreenConfig struct {
	Invoices  invoice.Business
	Clients   client.Business
	Users     user.Business
	Notifier  Notifier
	Confirmer Confirmer
	Logger    *logrus.Entry
	PageSize  int
}

// Screen is the invoice list: one page of rows plus the client and seller
// lists used by the filters. It is not safe for concurrent use.
type Screen struct {
	invoices  invoice.Business
	clients   client.Business
	users     user.Business
	notify    Notifier
	confirmer Confirmer
	log       *logrus.Entry

	Invoices    []model.InvoiceSummary
	Clients     []model.Client
	Sellers     []model.User
	Filter      model.InvoiceFilter
	PageNumber  int
	PageSize    int
	DisableNext bool
}

func NewScreen(cfg ScreenConfig) *Screen {
	log := cfg.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("component", "invoice_screen")

	notify := cfg.Notifier
	if notify == nil {
		notify = LogNotifier{Log: log}
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Screen{
		invoices:   cfg.Invoices,
		clients:    cfg.Clients,
		users:      cfg.Users,
		notify:     notify,
		confirmer:  cfg.Confirmer,
		log:        log,
		PageNumber: 1,
		PageSize:   pageSize,
	}
}

// Init loads the first page together with the active clients and sellers.
// Every list is attempted even when another fails.
func (s *Screen) Init(ctx context.Context) error {
	var errList []error
	if err := s.LoadInvoices(ctx); err != nil {
		errList = append(errList, err)
	}

	active := true
	clients, err := s.clients.ListClients(ctx, model.ClientFilter{Active: &active}, catalogPage, catalogPageSize)
	if err != nil {
		s.log.WithError(err).Error("failed to load clients")
		s.notify.Error("Clients", errMessage(err))
		errList = append(errList, err)
	}
	s.Clients = clients

	sellers, err := s.users.ListUsers(ctx, model.UserFilter{Active: &active}, catalogPage, catalogPageSize)
	if err != nil {
		s.log.WithError(err).Error("failed to load sellers")
		s.notify.Error("Sellers", errMessage(err))
		errList = append(errList, err)
	}
	s.Sellers = sellers

	return errors.Join(errList...)
}

// LoadInvoices reloads the current page. On failure the rows are cleared and
// paging forward is disabled.
func (s *Screen) LoadInvoices(ctx context.Context) error {
	rows, err := s.invoices.ListInvoices(ctx, s.Filter, s.PageNumber, s.PageSize)
	if err != nil {
		s.Invoices = nil
		s.DisableNext = true
		s.log.WithError(err).WithField("page", s.PageNumber).Error("failed to load invoices")
		s.notify.Error("Invoices", errMessage(err))
		return err
	}

	s.Invoices = rows
	s.DisableNext = len(rows) < s.PageSize
	return nil
}

// ApplyFilter replaces the filter and reloads from the first page.
func (s *Screen) ApplyFilter(ctx context.Context, filter model.InvoiceFilter) error {
	s.Filter = filter
	s.PageNumber = 1
	return s.LoadInvoices(ctx)
}

func (s *Screen) NextPage(ctx context.Context) error {
	if s.DisableNext {
		return nil
	}
	s.PageNumber++
	return s.LoadInvoices(ctx)
}

func (s *Screen) PrevPage(ctx context.Context) error {
	if s.PageNumber <= 1 {
		return nil
	}
	s.PageNumber--
	return s.LoadInvoices(ctx)
}

// Delete asks for confirmation, deletes the invoice and reloads the page.
// It reports whether the invoice was deleted.
func (s *Screen) Delete(ctx context.Context, id int) (bool, error) {
	if s.confirmer != nil {
		ok, err := s.confirmer.Confirm(ctx, "Delete invoice", fmt.Sprintf("Delete invoice %d?", id))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if err := s.invoices.DeleteInvoice(ctx, id); err != nil {
		s.log.WithError(err).WithField("invoice_id", id).Error("failed to delete invoice")
		s.notify.Error("Invoices", errMessage(err))
		return false, err
	}
	s.notify.Success("Invoices", fmt.Sprintf("invoice %d deleted", id))

	if err := s.LoadInvoices(ctx); err != nil {
		s.log.WithError(err).Warn("reload after delete failed")
	}
	return true, nil
}
