package model

import (
	"fmt"

	"admin.app/billing/apperr"
)

// TagLines returns a copy of lines with every line attached to invoiceID.
func TagLines(lines []InvoiceLineRequest, invoiceID int) []InvoiceLineRequest {
	tagged := make([]InvoiceLineRequest, len(lines))
	for i, l := range lines {
		l.InvoiceID = invoiceID
		tagged[i] = l
	}
	return tagged
}

// PartialOutcome describes a save whose header was created while its line
// items were rejected.
func PartialOutcome(invoiceID int, cause error) SaveOutcome {
	reason := "unknown error"
	if cause != nil {
		reason = apperr.Message(cause)
	}
	return SaveOutcome{
		InvoiceID: invoiceID,
		Partial:   true,
		Message:   fmt.Sprintf("invoice %d was created but its lines were not saved: %s", invoiceID, reason),
	}
}
