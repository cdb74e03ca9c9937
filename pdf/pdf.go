// Package pdf reads the text of report pages from PDF documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/fwojciec/ledger"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// Layout tolerances, in points.
const (
	// Glyphs whose baselines differ by at most RowTolerance share a row.
	RowTolerance = 3.0

	// A horizontal gap wider than WordGap between two glyphs in a row
	// separates words.
	WordGap = 3.0
)

// Ensure TextExtractor implements ledger.TextExtractor at compile time.
var _ ledger.TextExtractor = (*TextExtractor)(nil)

// TextExtractor extracts the text of the first page of a PDF document.
// Glyphs are grouped into visual rows by baseline, rows are emitted top to
// bottom, and glyphs within a row left to right. A space is inserted
// wherever the gap between neighbouring glyphs exceeds WordGap.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText reads the whole document from r and returns the text of page 1.
func (e *TextExtractor) ExtractText(ctx context.Context, r io.Reader) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", &ledger.Error{Code: ledger.EACQUISITION, Message: "error reading document", Err: err}
	}
	if len(data) == 0 {
		return "", ledger.Errorf(ledger.EACQUISITION, "the document is empty")
	}

	// The reader panics on some malformed documents.
	defer func() {
		if v := recover(); v != nil {
			text = ""
			err = &ledger.Error{Code: ledger.EACQUISITION, Message: "the document is not a readable PDF", Err: fmt.Errorf("%v", v)}
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ledger.Error{Code: ledger.EACQUISITION, Message: "the document is not a readable PDF", Err: err}
	}
	if doc.NumPage() == 0 {
		return "", ledger.Errorf(ledger.EACQUISITION, "the document has no pages")
	}

	page := doc.Page(1)
	if page.V.IsNull() {
		return "", ledger.Errorf(ledger.EACQUISITION, "the first page of the document is missing")
	}

	text = norm.NFKC.String(layoutText(page.Content().Text))
	if strings.TrimSpace(text) == "" {
		return "", ledger.Errorf(ledger.EACQUISITION, "the first page has no extractable text")
	}
	return text, nil
}

type row struct {
	y      float64
	glyphs []pdf.Text
}

// layoutText renders positioned glyphs as lines of text.
func layoutText(glyphs []pdf.Text) string {
	rows := groupRows(glyphs)

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(rowText(r.glyphs))
		b.WriteByte('\n')
	}
	return b.String()
}

// groupRows buckets glyphs by baseline and orders the rows top to bottom.
// Line breaks emitted by the content decoder carry no position and are dropped.
func groupRows(glyphs []pdf.Text) []row {
	var rows []row
	for _, g := range glyphs {
		if g.S == "" || strings.Trim(g.S, "\r\n") == "" {
			continue
		}
		placed := false
		for i := range rows {
			if math.Abs(rows[i].y-g.Y) <= RowTolerance {
				rows[i].glyphs = append(rows[i].glyphs, g)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{y: g.Y, glyphs: []pdf.Text{g}})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	return rows
}

// rowText joins the glyphs of one row left to right. Whitespace glyphs are
// kept as a single space, and a space is added on gaps wider than WordGap.
func rowText(glyphs []pdf.Text) string {
	sort.SliceStable(glyphs, func(i, j int) bool { return glyphs[i].X < glyphs[j].X })

	var b strings.Builder
	space := true
	for i, g := range glyphs {
		if strings.TrimSpace(g.S) == "" {
			if !space {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		if i > 0 && !space {
			prev := glyphs[i-1]
			if g.X-(prev.X+prev.W) > WordGap {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
		space = false
	}
	return strings.TrimRight(b.String(), " ")
}
