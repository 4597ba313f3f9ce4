// Package invoicepage drives the invoice list screen and the invoice
// composition form on top of the invoice, client, product and user use cases.
package invoicepage

import (
	"context"

	"github.com/sirupsen/logrus"

	"admin.app/billing/apperr"
)

// Notifier reports operation outcomes to the operator.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
	Warning(title, message string)
}

// Confirmer asks the operator to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) (bool, error)
}

// LogNotifier writes notifications to a logger. It is the fallback when no
// operator-facing notifier is configured.
type LogNotifier struct {
	Log *logrus.Entry
}

func (n LogNotifier) entry(title string) *logrus.Entry {
	log := n.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return log.WithField("title", title)
}

func (n LogNotifier) Success(title, message string) { n.entry(title).Info(message) }
func (n LogNotifier) Error(title, message string)   { n.entry(title).Error(message) }
func (n LogNotifier) Warning(title, message string) { n.entry(title).Warn(message) }

// errMessage returns the operator-facing text of err.
func errMessage(err error) string {
	return apperr.Message(err)
}
