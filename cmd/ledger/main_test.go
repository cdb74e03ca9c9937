package main_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/ledger/mock"
	"github.com/stretchr/testify/require"
)

// samplePage mimics the text of one collection report page.
const samplePage = `REPORT OF COLLECTIONS
FROM 06/01/2025 TO 06/30/2025 FISCAL YEAR FROM
YEAR  COLLECTED DISTRIBUTED
------ ----------
2024 1000.00 0.00 500.00 0.00 500.00 50.00% 500.00 10.00 0.00 5.00 2.00 517.00
2023 200.00 0.00 100.00 25.00- 75.00 37.50% 125.00 0.00 0.00 0.00 0.00 75.00
TOTL 1200.00
ENTITY TOTALS
`

func testContext() context.Context {
	return context.Background()
}

// writeFile creates a document file in a temp directory and returns its path.
func writeFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 placeholder"), 0644))
	return path
}

func pageExtractor(text string) *mock.TextExtractor {
	return &mock.TextExtractor{
		ExtractTextFn: func(context.Context, io.Reader) (string, error) {
			return text, nil
		},
	}
}
