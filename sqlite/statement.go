package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/ledger"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ledger.StatementService = (*StatementService)(nil)

const rowColumns = `fiscal_year, beginning_tax_balance, tax_adjustment, base_tax_collected, reversals,
	net_base_tax_collected, percent_collected, ending_tax_balance, property_and_insurance_collected,
	property_and_insurance_reversals, local_real_property_collected, other_penalty_collected, total_distributed`

// StatementService implements ledger.StatementService using SQLite.
type StatementService struct {
	db *DB
}

// NewStatementService creates a new StatementService.
func NewStatementService(db *DB) *StatementService {
	return &StatementService{db: db}
}

// CreateStatement stores a statement and its rows in one transaction.
// ID, ContentHash and ImportedAt are assigned here. Returns ECONFLICT, with
// ContentHash set, if a statement with the same page text already exists.
func (s *StatementService) CreateStatement(ctx context.Context, stmt *ledger.Statement) error {
	if err := stmt.Validate(); err != nil {
		return err
	}

	stmt.ContentHash = hashContent(stmt.Text)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRowContext(ctx, "SELECT id FROM statements WHERE content_hash = ? LIMIT 1", stmt.ContentHash).Scan(&existing)
	if err == nil {
		return ledger.Errorf(ledger.ECONFLICT, "page already imported as statement %s", existing)
	} else if err != sql.ErrNoRows {
		return err
	}

	if err := insertStatement(ctx, tx, stmt); err != nil {
		return err
	}
	return tx.Commit()
}

// ReplaceStatement removes the statements stored from the same page text and
// stores stmt, all in one transaction. It returns the IDs it removed, oldest
// first. If anything fails the earlier statements are kept.
func (s *StatementService) ReplaceStatement(ctx context.Context, stmt *ledger.Statement) ([]string, error) {
	if err := stmt.Validate(); err != nil {
		return nil, err
	}

	stmt.ContentHash = hashContent(stmt.Text)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, "SELECT id FROM statements WHERE content_hash = ? ORDER BY imported_at ASC, rowid ASC", stmt.ContentHash)
	if err != nil {
		return nil, err
	}
	var replaced []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		replaced = append(replaced, id)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM statements WHERE content_hash = ?", stmt.ContentHash); err != nil {
		return nil, err
	}
	if err := insertStatement(ctx, tx, stmt); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return replaced, nil
}

// insertStatement assigns ID and ImportedAt and writes stmt with its rows.
func insertStatement(ctx context.Context, tx *sql.Tx, stmt *ledger.Statement) error {
	stmt.ID = uuid.New().String()
	stmt.ImportedAt = time.Now().UTC().Truncate(time.Second)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO statements (id, source, content_hash, period_start, period_end, raw_text, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, stmt.ID, stmt.Source, stmt.ContentHash, stmt.PeriodStart.Format(dateLayout),
		stmt.PeriodEnd.Format(dateLayout), stmt.Text, stmt.ImportedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, r := range stmt.Rows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO rows (statement_id, position, `+rowColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, stmt.ID, i, r.FiscalYear, r.BeginningTaxBalance, r.TaxAdjustment, r.BaseTaxCollected,
			r.Reversals, r.NetBaseTaxCollected, r.PercentCollected, r.EndingTaxBalance,
			r.PropertyAndInsuranceCollected, r.PropertyAndInsuranceReversals,
			r.LocalRealPropertyCollected, r.OtherPenaltyCollected, r.TotalDistributed); err != nil {
			return err
		}
	}
	return nil
}

// FindStatementByID retrieves a statement with its rows in document order.
func (s *StatementService) FindStatementByID(ctx context.Context, id string) (*ledger.Statement, error) {
	stmts, err := s.FindStatements(ctx, ledger.StatementFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(stmts) == 0 {
		return nil, ledger.Errorf(ledger.ENOTFOUND, "statement not found")
	}
	stmt := stmts[0]

	if err := s.db.QueryRowContext(ctx, "SELECT raw_text FROM statements WHERE id = ?", id).Scan(&stmt.Text); err != nil {
		return nil, err
	}

	stmt.Rows, err = s.findRows(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

func (s *StatementService) findRows(ctx context.Context, stmt *ledger.Statement) ([]*ledger.Row, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+rowColumns+" FROM rows WHERE statement_id = ? ORDER BY position ASC", stmt.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ledger.Row
	for rows.Next() {
		r := ledger.Row{PeriodStart: stmt.PeriodStart, PeriodEnd: stmt.PeriodEnd}
		if err := rows.Scan(&r.FiscalYear, &r.BeginningTaxBalance, &r.TaxAdjustment, &r.BaseTaxCollected,
			&r.Reversals, &r.NetBaseTaxCollected, &r.PercentCollected, &r.EndingTaxBalance,
			&r.PropertyAndInsuranceCollected, &r.PropertyAndInsuranceReversals,
			&r.LocalRealPropertyCollected, &r.OtherPenaltyCollected, &r.TotalDistributed); err != nil {
			return nil, err
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

// FindStatements retrieves statements matching the filter, newest first.
// Rows and raw text are not loaded.
func (s *StatementService) FindStatements(ctx context.Context, filter ledger.StatementFilter) ([]*ledger.Statement, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, content_hash, period_start, period_end, imported_at FROM statements WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY imported_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stmts []*ledger.Statement
	for rows.Next() {
		var stmt ledger.Statement
		var periodStart, periodEnd, importedAt string

		if err := rows.Scan(&stmt.ID, &stmt.Source, &stmt.ContentHash, &periodStart, &periodEnd, &importedAt); err != nil {
			return nil, err
		}
		if stmt.PeriodStart, err = parseDate(periodStart, "period_start"); err != nil {
			return nil, err
		}
		if stmt.PeriodEnd, err = parseDate(periodEnd, "period_end"); err != nil {
			return nil, err
		}
		if stmt.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
			return nil, err
		}

		stmts = append(stmts, &stmt)
	}

	return stmts, rows.Err()
}

// DeleteStatement permanently removes a statement. Its rows go with it.
func (s *StatementService) DeleteStatement(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM statements WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ledger.Errorf(ledger.ENOTFOUND, "statement not found")
	}
	return nil
}
