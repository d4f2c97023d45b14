package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wallparse"
)

// Ensure LoggingExtractor implements wallparse.Extractor.
var _ wallparse.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   wallparse.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next wallparse.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (x *LoggingExtractor) Extract(ctx context.Context, r io.Reader, fn wallparse.RecordFunc) (result *wallparse.ExtractResult, err error) {
	begin := time.Now()
	defer func() {
		if err != nil {
			x.logger.Error("extract",
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		x.logger.Info("extract",
			"records", result.Records,
			"comments", result.Comments,
			"discarded", result.Discarded,
			"diagnostics", result.Diagnostics,
			"duration", time.Since(begin),
		)
	}()
	return x.next.Extract(ctx, r, fn)
}
