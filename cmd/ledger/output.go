package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fwojciec/ledger"
)

// writeRows prints rows as a tab-aligned table with a Columns header, or as
// indented JSON.
func writeRows(w io.Writer, rows []*ledger.Row, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(ledger.Columns, "\t")+"\t")
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(ledger.FormatRecord(row), "\t")+"\t")
	}
	return tw.Flush()
}
