package invoicepage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"encore.dev/beta/errs"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"admin.app/billing/apperr"
	"admin.app/billing/model"
)

var validate = validator.New()

// LineItem is one editable line of the form.
type LineItem struct {
	ProductID   int `validate:"gt=0"`
	ProductName string
	Quantity    int `validate:"gt=0"`
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	// DetailID is set when the line already exists on the backend.
	DetailID *int
}

func (l *LineItem) recompute() {
	l.Subtotal = l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func newLineItem() LineItem {
	return LineItem{Quantity: 1, UnitPrice: decimal.Zero, Subtotal: decimal.Zero}
}

// Draft is the content of the form. Field order matters: validation reports
// the first failing field.
type Draft struct {
	InvoiceID     int
	Date          string
	ClientID      int `validate:"gt=0"`
	Phone         string
	Email         string
	PaymentMethod model.PaymentMethod `validate:"oneof=Efectivo Tarjeta Transferencia"`
	PaymentStatus model.PaymentStatus `validate:"oneof=Pendiente Pagada Cancelada"`
	Lines         []LineItem          `validate:"min=1,dive"`
	Total         decimal.Decimal
}

func (d *Draft) recomputeTotal() {
	total := decimal.Zero
	for _, l := range d.Lines {
		total = total.Add(l.Subtotal)
	}
	d.Total = total
}

func (d Draft) clone() Draft {
	lines := make([]LineItem, len(d.Lines))
	copy(lines, d.Lines)
	d.Lines = lines
	return d
}

// Validate checks the save preconditions.
func (d Draft) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperr.New(errs.InvalidArgument, describe(verrs[0]))
		}
		return apperr.New(errs.InvalidArgument, err.Error())
	}
	if !d.Total.IsPositive() {
		return apperr.New(errs.InvalidArgument, "invoice total must be greater than zero")
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.StructField() {
	case "ClientID":
		return "select a client"
	case "PaymentMethod":
		return "select a payment method"
	case "PaymentStatus":
		return "select a payment status"
	case "Lines":
		return "add at least one line"
	case "ProductID":
		return fmt.Sprintf("line %d has no product", lineNumber(fe.Namespace()))
	case "Quantity":
		return fmt.Sprintf("line %d quantity must be greater than zero", lineNumber(fe.Namespace()))
	}
	return fe.Error()
}

// lineNumber extracts the 1-based line number from a namespace such as
// "Draft.Lines[2].Quantity".
func lineNumber(namespace string) int {
	start := strings.Index(namespace, "[")
	end := strings.Index(namespace, "]")
	if start < 0 || end <= start {
		return 0
	}
	n, err := strconv.Atoi(namespace[start+1 : end])
	if err != nil {
		return 0
	}
	return n + 1
}

// lineRequests converts the draft lines to the detail insert payload. The
// invoice id is left for the saver to fill in.
func (d Draft) lineRequests() []model.InvoiceLineRequest {
	reqs := make([]model.InvoiceLineRequest, len(d.Lines))
	for i, l := range d.Lines {
		reqs[i] = model.InvoiceLineRequest{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.InexactFloat64(),
			Subtotal:  l.Subtotal.InexactFloat64(),
			DetailID:  l.DetailID,
		}
	}
	return reqs
}
