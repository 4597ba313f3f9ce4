package invoicepage

import (
	"context"
	"errors"
	"time"

	"encore.dev/beta/errs"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"admin.app/billing/apperr"
	"admin.app/billing/business/client"
	"admin.app/billing/business/invoice"
	"admin.app/billing/business/product"
	"admin.app/billing/domain"
	"admin.app/billing/model"
)

const (
	catalogPage     = 1
	catalogPageSize = 100
	dateLayout      = "2006-01-02"
)

// FormConfig wires the form to its collaborators. Invoices, Clients and
// Products are required.
type FormConfig struct {
	Invoices invoice.Business
	Clients  client.Business
	Products product.Business
	Saver    Saver
	Notifier Notifier
	Logger   *logrus.Entry
	// UserID is the operator recorded as the seller of new invoices.
	UserID int
	Now    func() time.Time
	// OnSaved runs after a save that created or updated data, typically to
	// reload the invoice list.
	OnSaved func(ctx context.Context) error
}

// Form is the invoice composition form. It is not safe for concurrent use.
type Form struct {
	invoices invoice.Business
	clients  client.Business
	products product.Business
	saver    Saver
	notify   Notifier
	log      *logrus.Entry
	userID   int
	now      func() time.Time
	onSaved  func(ctx context.Context) error

	sm    domain.FormStateMachine
	draft Draft

	clientList  []model.Client
	productList []model.Product
}

func NewForm(cfg FormConfig) *Form {
	log := cfg.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("component", "invoice_form")

	notify := cfg.Notifier
	if notify == nil {
		notify = LogNotifier{Log: log}
	}
	saver := cfg.Saver
	if saver == nil {
		saver = NewSequentialSaver(cfg.Invoices, log)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Form{
		invoices: cfg.Invoices,
		clients:  cfg.Clients,
		products: cfg.Products,
		saver:    saver,
		notify:   notify,
		log:      log,
		userID:   cfg.UserID,
		now:      now,
		onSaved:  cfg.OnSaved,
	}
}

func (f *Form) State() domain.FormState { return f.sm.State() }

// Draft returns a snapshot of the form content.
func (f *Form) Draft() Draft { return f.draft.clone() }

func (f *Form) Clients() []model.Client   { return f.clientList }
func (f *Form) Products() []model.Product { return f.productList }

// LoadCatalogs loads the active clients and the product catalog used by the
// selectors. A failed list is reported and left empty.
func (f *Form) LoadCatalogs(ctx context.Context) error {
	var errList []error

	active := true
	clients, err := f.clients.ListClients(ctx, model.ClientFilter{Active: &active}, catalogPage, catalogPageSize)
	if err != nil {
		f.clientList = nil
		f.log.WithError(err).Error("failed to load clients")
		f.notify.Error("Clients", errMessage(err))
		errList = append(errList, err)
	} else {
		f.clientList = clients
	}

	products, err := f.products.ListProducts(ctx)
	if err != nil {
		f.productList = nil
		f.log.WithError(err).Error("failed to load products")
		f.notify.Error("Products", errMessage(err))
		errList = append(errList, err)
	} else {
		f.productList = products
	}

	return errors.Join(errList...)
}

// OpenForCreate opens an empty form with one blank line.
func (f *Form) OpenForCreate() error {
	if err := f.sm.TransitionToOpenCreate(); err != nil {
		return err
	}
	f.draft = Draft{
		Date:          f.now().Format(dateLayout),
		PaymentMethod: model.PaymentMethodCash,
		PaymentStatus: model.PaymentStatusPending,
		Lines:         []LineItem{newLineItem()},
		Total:         decimal.Zero,
	}
	return nil
}

// Close discards the draft.
func (f *Form) Close() {
	f.sm.TransitionToClosed()
	f.draft = Draft{}
}

// SelectClient selects a loaded client and copies its contact data. An id
// that is not loaded clears the selection.
func (f *Form) SelectClient(id int) error {
	if err := f.sm.RequireInteractive(); err != nil {
		return err
	}
	for _, c := range f.clientList {
		if c.ID == id && id != 0 {
			f.draft.ClientID = c.ID
			f.draft.Phone = c.Phone
			f.draft.Email = c.Email
			return nil
		}
	}
	f.draft.ClientID = 0
	f.draft.Phone = ""
	f.draft.Email = ""
	return nil
}

func (f *Form) SetPaymentMethod(m model.PaymentMethod) error {
	if err := f.sm.RequireInteractive(); err != nil {
		return err
	}
	if !m.Valid() {
		return apperr.New(errs.InvalidArgument, "unknown payment method " + string(m))
	}
	f.draft.PaymentMethod = m
	return nil
}

func (f *Form) SetPaymentStatus(s model.PaymentStatus) error {
	if err := f.sm.RequireInteractive(); err != nil {
		return err
	}
	if !s.Valid() {
		return apperr.New(errs.InvalidArgument, "unknown payment status " + string(s))
	}
	f.draft.PaymentStatus = s
	return nil
}
