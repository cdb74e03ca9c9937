package ledger_test

import (
	"testing"

	"github.com/fwojciec/ledger"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSection(t *testing.T) {
	t.Parallel()

	t.Run("drops header footer and blank lines", func(t *testing.T) {
		t.Parallel()

		section := "COLLECTED DISTRIBUTED\n\n   \n2024 1.00\nTOTL 1.00\n"

		assert.Equal(t, []string{"2024 1.00"}, ledger.NormalizeSection(section))
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		section := "  2024 \t  1.00    2.00  "

		assert.Equal(t, []string{"2024 1.00 2.00"}, ledger.NormalizeSection(section))
	})

	t.Run("removes dash runs and keeps lone dashes", func(t *testing.T) {
		t.Parallel()

		section := "----------- -------\n2024 --1.00 25.00- -3.00 4---5\n"

		assert.Equal(t, []string{"2024 1.00 25.00- -3.00 45"}, ledger.NormalizeSection(section))
	})

	t.Run("removes percent signs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"2024 50.00 100"}, ledger.NormalizeSection("2024 50.00% 100%"))
	})

	t.Run("preserves line order", func(t *testing.T) {
		t.Parallel()

		lines := ledger.NormalizeSection("2025 a\n2023 b\n2024 c")

		assert.Equal(t, []string{"2025 a", "2023 b", "2024 c"}, lines)
	})

	t.Run("returns nothing for header only", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ledger.NormalizeSection("COLLECTED DISTRIBUTED\n------\n"))
	})
}
