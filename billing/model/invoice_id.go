package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"encore.dev/beta/errs"
	"github.com/tidwall/gjson"

	"admin.app/billing/apperr"
)

// ParseInvoiceID coerces the data field of a create-invoice response into an
// invoice id. The backend sends it either as a JSON string or a JSON number.
func ParseInvoiceID(data json.RawMessage) (int, error) {
	if len(data) == 0 || !gjson.ValidBytes(data) {
		return 0, apperr.New(errs.DataLoss, "create invoice response has no id")
	}

	var id int
	v := gjson.ParseBytes(data)
	switch v.Type {
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return 0, apperr.New(errs.DataLoss, "create invoice response id is not a number: " + v.Str)
		}
		id = n
	case gjson.Number:
		if v.Num != math.Trunc(v.Num) || v.Num > math.MaxInt32 {
			return 0, apperr.New(errs.DataLoss, "create invoice response id is not an integer: " + v.Raw)
		}
		id = int(v.Num)
	default:
		return 0, apperr.New(errs.DataLoss, "create invoice response id has unexpected type: " + v.Raw)
	}

	if id <= 0 {
		return 0, apperr.New(errs.DataLoss, "create invoice response id is not positive: " + strconv.Itoa(id))
	}
	return id, nil
}
