package main

import (
	"fmt"

	"github.com/fwojciec/ledger"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	stmt, err := deps.Statements.FindStatementByID(deps.Ctx, c.ID)
	if err != nil {
		if ledger.ErrorCode(err) == ledger.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: statement %q not found. Use 'ledger list' to see stored statements.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", ledger.ErrorMessage(err))
		return err
	}

	return writeRows(deps.Stdout, stmt.Rows, c.JSON)
}
