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

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("stores extracted statement", func(t *testing.T) {
		t.Parallel()

		var created *ledger.Statement
		statements := &mock.StatementService{
			CreateStatementFn: func(_ context.Context, stmt *ledger.Statement) error {
				stmt.ID = "stmt-123"
				created = stmt
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        testContext(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Extractor:  pageExtractor(samplePage),
			Statements: statements,
		}

		cmd := &main.ImportCmd{File: writeFile(t, "june.pdf")}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "june.pdf", created.Source)
		assert.Equal(t, samplePage, created.Text)
		assert.Len(t, created.Rows, 2)
		assert.Contains(t, stdout.String(), "Imported statement stmt-123: 2 rows for period 2025-06-01 to 2025-06-01")
	})

	t.Run("does not store a malformed page", func(t *testing.T) {
		t.Parallel()

		statements := &mock.StatementService{
			CreateStatementFn: func(context.Context, *ledger.Statement) error {
				t.Fatal("CreateStatement should not be called")
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        testContext(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Extractor:  pageExtractor("no anchors here"),
			Statements: statements,
		}

		cmd := &main.ImportCmd{File: writeFile(t, "june.pdf")}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, ledger.ESTRUCTURE, ledger.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("rejects duplicate without force", func(t *testing.T) {
		t.Parallel()

		statements := &mock.StatementService{
			CreateStatementFn: func(_ context.Context, stmt *ledger.Statement) error {
				stmt.ContentHash = "abc"
				return ledger.Errorf(ledger.ECONFLICT, "page already imported as statement old-1")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        testContext(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Extractor:  pageExtractor(samplePage),
			Statements: statements,
		}

		cmd := &main.ImportCmd{File: writeFile(t, "june.pdf")}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, ledger.ECONFLICT, ledger.ErrorCode(err))
		assert.Contains(t, stderr.String(), "old-1")
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("replaces duplicate with force", func(t *testing.T) {
		t.Parallel()

		statements := &mock.StatementService{
			CreateStatementFn: func(context.Context, *ledger.Statement) error {
				t.Fatal("CreateStatement should not be called")
				return nil
			},
			ReplaceStatementFn: func(_ context.Context, stmt *ledger.Statement) ([]string, error) {
				assert.Equal(t, "june.pdf", stmt.Source)
				stmt.ID = "new-1"
				return []string{"old-1"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        testContext(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Extractor:  pageExtractor(samplePage),
			Statements: statements,
		}

		cmd := &main.ImportCmd{File: writeFile(t, "june.pdf"), Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Replaced statement old-1")
		assert.Contains(t, stdout.String(), "Imported statement new-1")
	})

	t.Run("reports failed replace without claiming success", func(t *testing.T) {
		t.Parallel()

		statements := &mock.StatementService{
			ReplaceStatementFn: func(context.Context, *ledger.Statement) ([]string, error) {
				return nil, context.Canceled
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        testContext(),
			Stdout:     stdout,
			Stderr:     stderr,
			Extractor:  pageExtractor(samplePage),
			Statements: statements,
		}

		cmd := &main.ImportCmd{File: writeFile(t, "june.pdf"), Force: true}
		err := cmd.Run(deps)

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "error:")
	})
}
