// Package slog provides logging decorators for ledger services.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/ledger"
)

// Ensure LoggingTextExtractor implements ledger.TextExtractor.
var _ ledger.TextExtractor = (*LoggingTextExtractor)(nil)

// LoggingTextExtractor wraps a TextExtractor with debug logging.
type LoggingTextExtractor struct {
	next   ledger.TextExtractor
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor.
func NewLoggingTextExtractor(next ledger.TextExtractor, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, logger: logger}
}

// ExtractText delegates to the wrapped extractor and logs the operation.
func (e *LoggingTextExtractor) ExtractText(ctx context.Context, r io.Reader) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("text extraction",
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractText(ctx, r)
}
