package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/ledger"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	defer f.Close()

	stmt, err := ledger.ExtractStatement(deps.Ctx, deps.Extractor, f, filepath.Base(c.File))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ledger.ErrorMessage(err))
		return err
	}

	if c.Force {
		err = c.replace(deps, stmt)
	} else {
		err = deps.Statements.CreateStatement(deps.Ctx, stmt)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ledger.ErrorMessage(err))
		if ledger.ErrorCode(err) == ledger.ECONFLICT {
			fmt.Fprintln(deps.Stderr, "Hint: Use --force to replace it")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported statement %s: %d rows for period %s to %s\n",
		stmt.ID, len(stmt.Rows), stmt.PeriodStart.Format("2006-01-02"), stmt.PeriodEnd.Format("2006-01-02"))
	return nil
}

// replace stores stmt in place of the statements imported from the same page.
func (c *ImportCmd) replace(deps *Dependencies, stmt *ledger.Statement) error {
	replaced, err := deps.Statements.ReplaceStatement(deps.Ctx, stmt)
	if err != nil {
		return err
	}
	for _, id := range replaced {
		fmt.Fprintf(deps.Stdout, "Replaced statement %s\n", id)
	}
	return nil
}
