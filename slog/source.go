// Package slog provides logging decorators for docdump interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docdump"
)

// Ensure LoggingSource implements docdump.FileSource.
var _ docdump.FileSource = (*LoggingSource)(nil)

// LoggingSource wraps a FileSource with discovery logging.
type LoggingSource struct {
	next   docdump.FileSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next docdump.FileSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source and logs the outcome.
func (s *LoggingSource) Discover(ctx context.Context, root, orderFile string) ([]string, error) {
	begin := time.Now()
	files, err := s.next.Discover(ctx, root, orderFile)
	if err != nil {
		s.logger.Error("file discovery failed",
			"root", root,
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("file discovery",
		"root", root,
		"orderFile", orderFile,
		"files", len(files),
		"duration", time.Since(begin),
	)
	return files, nil
}
