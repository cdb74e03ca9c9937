package ledger

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the month/day/4-digit-year layout of period dates.
// Single-digit months and days are accepted.
const DateLayout = "1/2/2006"

// DateTokens strips everything but digits, slashes and spaces from the
// date block and returns the non-empty space-separated tokens.
func DateTokens(block string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '/' || r == ' ' {
			return r
		}
		return -1
	}, block)

	var tokens []string
	for _, tok := range strings.Split(cleaned, " ") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// ExtractPeriod parses the reporting period from the date block of text.
//
// Both returned dates come from the first date token; the second token is
// validated for presence only. Returns EFORMAT if fewer than two tokens are
// present or the first token is not a valid date.
func ExtractPeriod(text string, a Anchors) (start, end time.Time, err error) {
	tokens := DateTokens(a.PeriodBlock(text))
	if len(tokens) < 2 {
		return time.Time{}, time.Time{}, Errorf(EFORMAT,
			"expected two dates in the reporting period, found %d", len(tokens))
	}

	start, err = ParseDate(tokens[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = ParseDate(tokens[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// ParseDate parses a month/day/year token such as "06/01/2025".
// Returns EFORMAT for a malformed token or an impossible calendar date.
func ParseDate(token string) (time.Time, error) {
	t, err := time.Parse(DateLayout, token)
	if err != nil {
		return time.Time{}, &Error{
			Code:    EFORMAT,
			Message: fmt.Sprintf("invalid date %q, expected MM/DD/YYYY", token),
			Text:    token,
			Err:     err,
		}
	}
	return t, nil
}
