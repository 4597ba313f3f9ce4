package invoicepage

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"github.com/shopspring/decimal"

	"admin.app/billing/apperr"
)

func (f *Form) line(i int) (*LineItem, error) {
	if err := f.sm.RequireInteractive(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(f.draft.Lines) {
		return nil, apperr.New(errs.InvalidArgument, fmt.Sprintf("line %d does not exist", i+1))
	}
	return &f.draft.Lines[i], nil
}

// AddLine appends a blank line and returns its index.
func (f *Form) AddLine() (int, error) {
	if err := f.sm.RequireInteractive(); err != nil {
		return 0, err
	}
	f.draft.Lines = append(f.draft.Lines, newLineItem())
	f.draft.recomputeTotal()
	return len(f.draft.Lines) - 1, nil
}

// SelectProduct sets the product of line i and copies its name and unit
// price. Product id 0 resets the line.
func (f *Form) SelectProduct(i, productID int) error {
	l, err := f.line(i)
	if err != nil {
		return err
	}

	if productID == 0 {
		l.ProductID = 0
		l.ProductName = ""
		l.UnitPrice = decimal.Zero
	} else {
		found := false
		for _, p := range f.productList {
			if p.ID == productID {
				l.ProductID = p.ID
				l.ProductName = p.Name
				l.UnitPrice = decimal.NewFromFloat(p.UnitPrice)
				found = true
				break
			}
		}
		if !found {
			return apperr.New(errs.NotFound, fmt.Sprintf("product %d is not loaded", productID))
		}
	}

	l.recompute()
	f.draft.recomputeTotal()
	return nil
}

// SetQuantity stores qty as entered. Non-positive quantities are accepted
// here and rejected on save.
func (f *Form) SetQuantity(i, qty int) error {
	l, err := f.line(i)
	if err != nil {
		return err
	}
	l.Quantity = qty
	l.recompute()
	f.draft.recomputeTotal()
	return nil
}

// RemoveLine removes line i. A line that exists on the backend is deleted
// there first and stays in the form if that fails. The last line is never
// removed.
func (f *Form) RemoveLine(ctx context.Context, i int) error {
	l, err := f.line(i)
	if err != nil {
		return err
	}
	if len(f.draft.Lines) == 1 {
		f.notify.Warning("Lines", "an invoice needs at least one line")
		return apperr.New(errs.FailedPrecondition, "cannot remove the only line")
	}

	if l.DetailID != nil {
		detailID := *l.DetailID
		if err := f.invoices.DeleteInvoiceDetail(ctx, detailID); err != nil {
			f.log.WithError(err).WithField("detail_id", detailID).Error("failed to delete invoice detail")
			f.notify.Error("Lines", errMessage(err))
			return err
		}
		f.notify.Success("Lines", "line deleted")
	}

	f.draft.Lines = append(f.draft.Lines[:i], f.draft.Lines[i+1:]...)
	f.draft.recomputeTotal()
	return nil
}
