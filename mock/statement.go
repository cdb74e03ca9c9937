package mock

import (
	"context"

	"github.com/fwojciec/ledger"
)

var _ ledger.StatementService = (*StatementService)(nil)

// StatementService is a mock implementation of ledger.StatementService.
type StatementService struct {
	CreateStatementFn   func(ctx context.Context, stmt *ledger.Statement) error
	ReplaceStatementFn  func(ctx context.Context, stmt *ledger.Statement) ([]string, error)
	FindStatementByIDFn func(ctx context.Context, id string) (*ledger.Statement, error)
	FindStatementsFn    func(ctx context.Context, filter ledger.StatementFilter) ([]*ledger.Statement, error)
	DeleteStatementFn   func(ctx context.Context, id string) error
}

func (s *StatementService) CreateStatement(ctx context.Context, stmt *ledger.Statement) error {
	return s.CreateStatementFn(ctx, stmt)
}

func (s *StatementService) ReplaceStatement(ctx context.Context, stmt *ledger.Statement) ([]string, error) {
	return s.ReplaceStatementFn(ctx, stmt)
}

func (s *StatementService) FindStatementByID(ctx context.Context, id string) (*ledger.Statement, error) {
	return s.FindStatementByIDFn(ctx, id)
}

func (s *StatementService) FindStatements(ctx context.Context, filter ledger.StatementFilter) ([]*ledger.Statement, error) {
	return s.FindStatementsFn(ctx, filter)
}

func (s *StatementService) DeleteStatement(ctx context.Context, id string) error {
	return s.DeleteStatementFn(ctx, id)
}
