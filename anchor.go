package ledger

import "strings"

// Anchor markers in the page text.
const (
	MarkerSectionStart = "COLLECTED DISTRIBUTED"
	MarkerSectionEnd   = "ENTITY"
	MarkerPeriodStart  = "FROM"
	MarkerPeriodEnd    = "YEAR FROM"
)

// Anchors holds the byte offsets of the first occurrence of each marker.
type Anchors struct {
	SectionStart int
	SectionEnd   int
	PeriodStart  int
	PeriodEnd    int
}

// LocateAnchors finds the data-table and date-block markers in page text.
// Returns ESTRUCTURE if a marker is missing or the table end marker does
// not follow the table start marker.
func LocateAnchors(text string) (Anchors, error) {
	a := Anchors{
		SectionStart: strings.Index(text, MarkerSectionStart),
		SectionEnd:   strings.Index(text, MarkerSectionEnd),
		PeriodStart:  strings.Index(text, MarkerPeriodStart),
		PeriodEnd:    strings.Index(text, MarkerPeriodEnd),
	}

	// A stray ENTITY above the table would otherwise select the wrong span.
	if a.SectionStart == -1 || a.SectionEnd == -1 || a.SectionStart >= a.SectionEnd {
		return Anchors{}, Errorf(ESTRUCTURE,
			"could not locate a valid %q ... %q section in the document text", MarkerSectionStart, MarkerSectionEnd)
	}
	if a.PeriodStart == -1 || a.PeriodEnd == -1 {
		return Anchors{}, Errorf(ESTRUCTURE,
			"could not locate the reporting period between %q and %q in the document text", MarkerPeriodStart, MarkerPeriodEnd)
	}

	return a, nil
}

// Section returns the data-table span of text.
func (a Anchors) Section(text string) string {
	return text[a.SectionStart:a.SectionEnd]
}

// PeriodBlock returns the date-block span of text. It is empty when the
// period end marker precedes the period start marker.
func (a Anchors) PeriodBlock(text string) string {
	if a.PeriodEnd < a.PeriodStart {
		return ""
	}
	return text[a.PeriodStart:a.PeriodEnd]
}
