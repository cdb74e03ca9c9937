package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/ledger"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	defer f.Close()

	rows, err := ledger.Extract(deps.Ctx, deps.Extractor, f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ledger.ErrorMessage(err))
		return err
	}

	return writeRows(deps.Stdout, rows, c.JSON)
}
