package ledger

import (
	"context"
	"io"
)

// TextExtractor obtains the text of a report document.
// Implementations read exactly the first page.
type TextExtractor interface {
	// ExtractText reads the document from r and returns the full text of
	// its first page, one printed line per text line.
	// Returns EACQUISITION if the document is empty, unreadable, or has no
	// extractable text.
	ExtractText(ctx context.Context, r io.Reader) (string, error)
}
