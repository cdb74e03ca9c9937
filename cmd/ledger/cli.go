package main

import (
	"context"
	"io"

	"github.com/fwojciec/ledger"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Extractor  ledger.TextExtractor
	Statements ledger.StatementService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB    string `name:"db" help:"SQLite database path (default: $LEDGER_DB or ~/.ledger/ledger.db)"`
	Debug bool   `help:"Log service calls to stderr"`

	Extract ExtractCmd `cmd:"" help:"Print the ledger rows of a report PDF"`
	Import  ImportCmd  `cmd:"" help:"Extract a report PDF and store its rows"`
	List    ListCmd    `cmd:"" help:"List stored statements"`
	Show    ShowCmd    `cmd:"" help:"Print the rows of a stored statement"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored statement"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" help:"Report PDF"`
	JSON bool   `name:"json" help:"Print rows as JSON"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File  string `arg:"" help:"Report PDF"`
	Force bool   `short:"f" help:"Replace a statement already imported from the same page"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Statement ID"`
	JSON bool   `name:"json" help:"Print rows as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Statement ID"`
	Force bool   `help:"Confirm deletion"`
}
