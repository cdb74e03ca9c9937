package ledger

import (
	"context"
	"io"
	"time"
)

// Statement represents the rows extracted from one report page.
type Statement struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	ContentHash string    `json:"content_hash"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	Rows        []*Row    `json:"rows"`
	ImportedAt  time.Time `json:"imported_at"`

	// Raw page text the rows were parsed from.
	Text string `json:"-"`
}

// ParseStatement parses the page text of the document named source.
func ParseStatement(source, text string) (*Statement, error) {
	rows, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return &Statement{
		Source:      source,
		PeriodStart: rows[0].PeriodStart,
		PeriodEnd:   rows[0].PeriodEnd,
		Rows:        rows,
		Text:        text,
	}, nil
}

// ExtractStatement acquires the page text of the document in r and parses it
// into a statement named source. Acquisition failures are reported as
// EACQUISITION.
func ExtractStatement(ctx context.Context, src TextExtractor, r io.Reader, source string) (*Statement, error) {
	text, err := acquire(ctx, src, r)
	if err != nil {
		return nil, err
	}
	return ParseStatement(source, text)
}

// Validate returns an error if the statement contains invalid fields.
func (s *Statement) Validate() error {
	if s.Source == "" {
		return Errorf(EINVALID, "statement source required")
	}
	if len(s.Rows) == 0 {
		return Errorf(EINVALID, "statement rows required")
	}
	for _, row := range s.Rows {
		if !row.PeriodStart.Equal(s.PeriodStart) || !row.PeriodEnd.Equal(s.PeriodEnd) {
			return Errorf(EINVALID, "fiscal year %d does not match the statement period", row.FiscalYear)
		}
	}
	return nil
}

// StatementService represents a service for managing statements.
type StatementService interface {
	// CreateStatement stores a statement and its rows.
	// Returns ECONFLICT if the same page text is already stored.
	CreateStatement(ctx context.Context, stmt *Statement) error

	// ReplaceStatement atomically removes the statements stored from the same
	// page text and stores stmt. Returns the IDs of the removed statements.
	ReplaceStatement(ctx context.Context, stmt *Statement) ([]string, error)

	// FindStatementByID retrieves a statement with its rows.
	// Returns ENOTFOUND if statement does not exist.
	FindStatementByID(ctx context.Context, id string) (*Statement, error)

	// FindStatements retrieves statements matching the filter, without rows.
	FindStatements(ctx context.Context, filter StatementFilter) ([]*Statement, error)

	// DeleteStatement permanently removes a statement and its rows.
	// Returns ENOTFOUND if statement does not exist.
	DeleteStatement(ctx context.Context, id string) error
}

// StatementFilter represents a filter for FindStatements.
type StatementFilter struct {
	ID          *string `json:"id"`
	Source      *string `json:"source"`
	ContentHash *string `json:"content_hash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
