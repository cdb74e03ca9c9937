package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ledger"
)

// Ensure LoggingStatementService implements ledger.StatementService.
var _ ledger.StatementService = (*LoggingStatementService)(nil)

// LoggingStatementService wraps a StatementService with debug logging.
type LoggingStatementService struct {
	next   ledger.StatementService
	logger *slog.Logger
}

// NewLoggingStatementService creates a new LoggingStatementService.
func NewLoggingStatementService(next ledger.StatementService, logger *slog.Logger) *LoggingStatementService {
	return &LoggingStatementService{next: next, logger: logger}
}

func (s *LoggingStatementService) CreateStatement(ctx context.Context, stmt *ledger.Statement) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create statement",
			"source", stmt.Source,
			"rows", len(stmt.Rows),
			"id", stmt.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateStatement(ctx, stmt)
}

func (s *LoggingStatementService) ReplaceStatement(ctx context.Context, stmt *ledger.Statement) (replaced []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("replace statement",
			"source", stmt.Source,
			"rows", len(stmt.Rows),
			"id", stmt.ID,
			"replaced", len(replaced),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceStatement(ctx, stmt)
}

func (s *LoggingStatementService) FindStatementByID(ctx context.Context, id string) (stmt *ledger.Statement, err error) {
	defer func(begin time.Time) {
		var rows int
		if stmt != nil {
			rows = len(stmt.Rows)
		}
		s.logger.Info("find statement",
			"id", id,
			"rows", rows,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindStatementByID(ctx, id)
}

func (s *LoggingStatementService) FindStatements(ctx context.Context, filter ledger.StatementFilter) (stmts []*ledger.Statement, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find statements",
			"count", len(stmts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindStatements(ctx, filter)
}

func (s *LoggingStatementService) DeleteStatement(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete statement",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteStatement(ctx, id)
}
