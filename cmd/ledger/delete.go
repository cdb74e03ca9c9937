package main

import (
	"fmt"

	"github.com/fwojciec/ledger"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return ledger.Errorf(ledger.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Statements.DeleteStatement(deps.Ctx, c.ID); err != nil {
		if ledger.ErrorCode(err) == ledger.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: statement %q not found. Use 'ledger list' to see stored statements.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", ledger.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted statement %s\n", c.ID)
	return nil
}
