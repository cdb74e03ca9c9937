package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ledger"
	main "github.com/fwojciec/ledger/cmd/ledger"
	"github.com/fwojciec/ledger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{"extract", "import", "list", "show", "delete"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range commands {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")
		stdout := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		for _, cmd := range commands {
			assert.Contains(t, stdout.String(), cmd)
		}
		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "Flags:")
	})

	t.Run("fails without command", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), nil, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "no command specified")
	})

	t.Run("extract does not open the database", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = "/nonexistent/dir/ledger.db"
		m.Extractor = pageExtractor(samplePage)
		stdout := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", writeFile(t, "june.pdf")}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "fiscal_year")
		assert.Nil(t, m.DB)
	})

	t.Run("import and list against sqlite", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "ledger.db")
		file := writeFile(t, "june.pdf")

		m := main.NewMain()
		m.Extractor = pageExtractor(samplePage)
		stdout := &bytes.Buffer{}
		require.NoError(t, m.Run(testContext(), []string{"--db", dbPath, "import", file}, stdout, &bytes.Buffer{}))
		assert.Contains(t, stdout.String(), "2 rows")

		m = main.NewMain()
		stdout.Reset()
		require.NoError(t, m.Run(testContext(), []string{"--db", dbPath, "list"}, stdout, &bytes.Buffer{}))
		assert.Contains(t, stdout.String(), "june.pdf")

		m = main.NewMain()
		m.Extractor = pageExtractor(samplePage)
		stderr := &bytes.Buffer{}
		err := m.Run(testContext(), []string{"--db", dbPath, "import", file}, &bytes.Buffer{}, stderr)
		require.Error(t, err)
		assert.Equal(t, ledger.ECONFLICT, ledger.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")

		m = main.NewMain()
		m.Extractor = pageExtractor(samplePage)
		stdout.Reset()
		require.NoError(t, m.Run(testContext(), []string{"--db", dbPath, "import", "--force", file}, stdout, &bytes.Buffer{}))
		assert.Contains(t, stdout.String(), "Replaced statement ")
		assert.Contains(t, stdout.String(), "Imported statement ")
	})

	t.Run("debug logs service calls to stderr", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Statements = &mock.StatementService{
			FindStatementsFn: func(context.Context, ledger.StatementFilter) ([]*ledger.Statement, error) {
				return nil, nil
			},
		}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"--debug", "list"}, &bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "find statements")
		assert.Contains(t, stderr.String(), "duration=")
	})

	t.Run("without debug stderr remains quiet", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Statements = &mock.StatementService{
			FindStatementsFn: func(context.Context, ledger.StatementFilter) ([]*ledger.Statement, error) {
				return nil, nil
			},
		}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"list"}, &bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Empty(t, stderr.String())
	})
}
