package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/ledger"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	stmts, err := deps.Statements.FindStatements(deps.Ctx, ledger.StatementFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ledger.ErrorMessage(err))
		return err
	}

	if len(stmts) == 0 {
		fmt.Fprintln(deps.Stdout, "No statements found. Use 'ledger import' to add one.")
		return nil
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range stmts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Source,
			s.PeriodStart.Format("2006-01-02"), s.PeriodEnd.Format("2006-01-02"),
			s.ImportedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
