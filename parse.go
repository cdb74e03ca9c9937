package ledger

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ParseRow converts one normalized data line into a Row.
// lineNo is the 1-based position of the line among the normalized lines.
//
// Returns EFIELDCOUNT if the line has fewer than FieldCount tokens and
// EFIELDPARSE, wrapping the coercion error, if any token fails to convert.
// Tokens past FieldCount are ignored.
func ParseRow(line string, lineNo int, start, end time.Time) (*Row, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) < FieldCount {
		return nil, &Error{
			Code:    EFIELDCOUNT,
			Message: fmt.Sprintf("line %d has %d of %d expected values: %s", lineNo, len(tokens), FieldCount, line),
			Line:    lineNo,
			Text:    line,
		}
	}

	fieldErr := func(err error) error {
		return &Error{
			Code:    EFIELDPARSE,
			Message: fmt.Sprintf("failed to convert values in line %d: %s", lineNo, line),
			Line:    lineNo,
			Text:    line,
			Err:     err,
		}
	}

	year, err := parseFiscalYear(tokens[0])
	if err != nil {
		return nil, fieldErr(err)
	}

	row := &Row{
		FiscalYear:  year,
		PeriodStart: start,
		PeriodEnd:   end,
	}
	for i, dst := range row.amounts() {
		v, err := ParseAmount(tokens[i+1])
		if err != nil {
			return nil, fieldErr(err)
		}
		*dst = v
	}

	return row, nil
}

// parseFiscalYear parses a plain non-negative integer.
func parseFiscalYear(token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err == nil && v < 0 {
		err = fmt.Errorf("negative value %d", v)
	}
	if err != nil {
		return 0, &Error{
			Code:    ENUMBER,
			Message: fmt.Sprintf("cannot parse fiscal year from %q", token),
			Text:    token,
			Err:     err,
		}
	}
	return v, nil
}

// Parse runs the extraction pipeline over the text of one report page.
//
// All rows share the reporting period. The result is either complete or
// nil with an error: any failure discards the whole page. Returns EEMPTY
// if the data table holds no data lines.
func Parse(text string) ([]*Row, error) {
	anchors, err := LocateAnchors(text)
	if err != nil {
		return nil, err
	}

	start, end, err := ExtractPeriod(text, anchors)
	if err != nil {
		return nil, err
	}

	lines := NormalizeSection(anchors.Section(text))
	if len(lines) == 0 {
		return nil, Errorf(EEMPTY, "no data rows found between %q and %q", MarkerSectionStart, MarkerSectionEnd)
	}

	rows := make([]*Row, 0, len(lines))
	for i, line := range lines {
		row, err := ParseRow(line, i+1, start, end)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Extract acquires the page text of the document in r and parses it.
// Acquisition failures are reported as EACQUISITION.
func Extract(ctx context.Context, src TextExtractor, r io.Reader) ([]*Row, error) {
	text, err := acquire(ctx, src, r)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

func acquire(ctx context.Context, src TextExtractor, r io.Reader) (string, error) {
	text, err := src.ExtractText(ctx, r)
	if err != nil {
		if ErrorCode(err) == EACQUISITION {
			return "", err
		}
		return "", &Error{Code: EACQUISITION, Message: "error reading document", Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", Errorf(EACQUISITION, "no text could be extracted from the document")
	}
	return text, nil
}
