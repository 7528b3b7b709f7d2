package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docdump"
)

// Ensure LoggingExtractor implements docdump.Extractor.
var _ docdump.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging per extraction.
type LoggingExtractor struct {
	next   docdump.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docdump.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs sizes and duration.
func (e *LoggingExtractor) Extract(html string) (*docdump.ExtractResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(html)
	if err != nil {
		e.logger.Warn("extraction failed",
			"inputBytes", len(html),
			"error", err,
		)
		return nil, err
	}
	title := result.Title
	if title == "" {
		title = "(untitled)"
	}
	e.logger.Debug("extraction",
		"title", title,
		"inputBytes", len(html),
		"textBytes", len(result.Text),
		"duration", time.Since(begin),
	)
	return result, nil
}
