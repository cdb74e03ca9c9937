package ledger

import "strings"

// Header and footer fragments of the data table.
const (
	headerFragment = MarkerSectionStart
	footerFragment = "TOTL"
)

// NormalizeSection turns the data-table span into parseable data lines.
//
// Steps, in order: remove dashes that touch another dash (separator rules),
// remove percent signs, split into trimmed non-empty lines, drop header and
// footer lines, and collapse whitespace runs to a single space. A lone dash
// is kept because it marks a negative amount. Lines keep document order.
func NormalizeSection(section string) []string {
	section = collapseDashRuns(section)
	section = strings.ReplaceAll(section, "%", "")

	var lines []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, headerFragment) || strings.Contains(line, footerFragment) {
			continue
		}
		lines = append(lines, strings.Join(strings.Fields(line), " "))
	}
	return lines
}

// collapseDashRuns removes every dash adjacent to another dash, so runs of
// two or more dashes vanish entirely while single dashes survive.
func collapseDashRuns(s string) string {
	if !strings.Contains(s, "--") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '-' && ((i > 0 && s[i-1] == '-') || (i+1 < len(s) && s[i+1] == '-')) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
