package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/ledger"
	main "github.com/fwojciec/ledger/cmd/ledger"
	"github.com/fwojciec/ledger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints stored rows", func(t *testing.T) {
		t.Parallel()

		stmt, err := ledger.ParseStatement("june.pdf", samplePage)
		require.NoError(t, err)

		statements := &mock.StatementService{
			FindStatementByIDFn: func(_ context.Context, id string) (*ledger.Statement, error) {
				assert.Equal(t, "stmt-1", id)
				return stmt, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        testContext(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Statements: statements,
		}

		err = (&main.ShowCmd{ID: "stmt-1"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "beginning_tax_balance")
		assert.Contains(t, stdout.String(), "1000.00")
		assert.Contains(t, stdout.String(), "2023")
	})

	t.Run("reports missing statement", func(t *testing.T) {
		t.Parallel()

		statements := &mock.StatementService{
			FindStatementByIDFn: func(context.Context, string) (*ledger.Statement, error) {
				return nil, ledger.Errorf(ledger.ENOTFOUND, "statement not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        testContext(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Statements: statements,
		}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, ledger.ENOTFOUND, ledger.ErrorCode(err))
		assert.Contains(t, stderr.String(), "ledger list")
	})
}
