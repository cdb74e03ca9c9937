package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ledger"
	"github.com/fwojciec/ledger/pdf"
	ledgerslog "github.com/fwojciec/ledger/slog"
	"github.com/fwojciec/ledger/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db overrides it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Extractor  ledger.TextExtractor
	Statements ledger.StatementService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ledger"),
		kong.Description("Extract tax-collection ledger rows from report PDFs."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "error: no command specified. Run 'ledger --help' to see available commands")
		return ledger.Errorf(ledger.EINVALID, "no command specified")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	if m.Extractor == nil {
		m.Extractor = pdf.NewTextExtractor()
	}
	deps.Extractor = m.Extractor
	if logger != nil {
		deps.Extractor = ledgerslog.NewLoggingTextExtractor(deps.Extractor, logger)
	}

	// extract works on the document alone.
	if !strings.HasPrefix(kongCtx.Command(), "extract") {
		if m.Statements == nil {
			if cli.DB != "" {
				m.DBPath = cli.DB
			}
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "error: failed to open database at %q: %s\n", m.DBPath, err)
				fmt.Fprintln(stderr, "Hint: Set LEDGER_DB or --db to use a different database path")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			m.Statements = sqlite.NewStatementService(m.DB)
		}
		deps.Statements = m.Statements
		if logger != nil {
			deps.Statements = ledgerslog.NewLoggingStatementService(deps.Statements, logger)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("LEDGER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ledger.db"
	}
	dir := filepath.Join(home, ".ledger")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ledger.db")
}
