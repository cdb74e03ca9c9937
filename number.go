package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a numeric token to a signed decimal.
//
// The report typesets negative amounts with a dash, which may appear before,
// inside or after the digits ("-12.50", "12.50-"). A token containing any
// dash is therefore read as the negated magnitude of the token without its
// dashes. Returns ENUMBER if the remaining text is not a number.
func ParseAmount(token string) (decimal.Decimal, error) {
	token = strings.TrimSpace(token)

	if !strings.Contains(token, "-") {
		d, err := decimal.NewFromString(token)
		if err != nil {
			return decimal.Decimal{}, &Error{
				Code:    ENUMBER,
				Message: fmt.Sprintf("cannot parse number from %q", token),
				Text:    token,
				Err:     err,
			}
		}
		return d, nil
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(token, "-", ""))
	if err != nil {
		return decimal.Decimal{}, &Error{
			Code:    ENUMBER,
			Message: fmt.Sprintf("cannot parse number from %q after removing dashes (a dash marks a negative amount in this report)", token),
			Text:    token,
			Err:     err,
		}
	}
	return d.Neg(), nil
}
