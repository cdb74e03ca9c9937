package mock

import (
	"context"
	"io"

	"github.com/fwojciec/ledger"
)

var _ ledger.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of ledger.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(ctx context.Context, r io.Reader) (string, error)
}

func (e *TextExtractor) ExtractText(ctx context.Context, r io.Reader) (string, error) {
	return e.ExtractTextFn(ctx, r)
}
