package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docdump"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Ensure ConcurrentBuilder implements docdump.DocumentBuilder at compile time.
var _ docdump.DocumentBuilder = (*ConcurrentBuilder)(nil)

// ConcurrentBuilder implements docdump.DocumentBuilder by running each file
// through read → extract → (convert) and collecting results into an
// index-addressed slice, so output order is always input order regardless
// of the concurrency limit.
type ConcurrentBuilder struct {
	extractor   docdump.Extractor
	converter   docdump.Converter
	logger      *slog.Logger
	concurrency int
}

// BuilderOption configures a ConcurrentBuilder.
type BuilderOption func(*ConcurrentBuilder)

// WithConverter enables the markdown output mode: document bodies come from
// the converter applied to the extracted content HTML, falling back to the
// plain-text extraction when no body markup is available.
func WithConverter(c docdump.Converter) BuilderOption {
	return func(b *ConcurrentBuilder) {
		b.converter = c
	}
}

// WithConcurrency sets the extraction concurrency limit.
// Defaults to 1 (fully sequential) when not specified or non-positive.
func WithConcurrency(n int) BuilderOption {
	return func(b *ConcurrentBuilder) {
		b.concurrency = n
	}
}

// NewConcurrentBuilder creates a new ConcurrentBuilder.
func NewConcurrentBuilder(extractor docdump.Extractor, logger *slog.Logger, opts ...BuilderOption) *ConcurrentBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	b := &ConcurrentBuilder{
		extractor: extractor,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildAll processes all files and returns one document per path, in path
// order. An unreadable file yields an empty document and a warning; it is
// skipped during assembly rather than failing the run.
func (b *ConcurrentBuilder) BuildAll(
	ctx context.Context,
	root string,
	paths []string,
	progress docdump.BuildProgressFunc,
) ([]*docdump.Document, error) {
	docs := make([]*docdump.Document, len(paths))
	total := len(paths)

	limit := b.concurrency
	if limit <= 0 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			relPath := relativeTo(root, path)
			if progress != nil {
				progress(docdump.BuildProgress{
					Path:    path,
					RelPath: relPath,
					Index:   i + 1,
					Total:   total,
				})
			}

			docs[i] = b.buildOne(path, relPath, i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

// buildOne produces the document for a single file. Failures are recovered:
// the document comes back with empty title and text and is skipped later.
func (b *ConcurrentBuilder) buildOne(path, relPath string, position int) *docdump.Document {
	doc := &docdump.Document{
		ID:       uuid.New().String(),
		Path:     path,
		RelPath:  relPath,
		Position: position,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		b.logger.Warn("could not read file", "path", path, "error", err)
		return doc
	}

	// Invalid byte sequences are dropped rather than failing the file.
	content := strings.ToValidUTF8(string(raw), "")

	result, err := b.extractor.Extract(content)
	if err != nil {
		b.logger.Warn("could not extract file", "path", path, "error", err)
		return doc
	}

	doc.Title = result.Title
	if doc.Title == "" {
		doc.Title = filepath.Base(path)
	}

	doc.Text = result.Text
	if b.converter != nil && strings.TrimSpace(result.ContentHTML) != "" {
		if markdown, err := b.converter.Convert(result.ContentHTML); err == nil {
			doc.Text = markdown
		} else {
			b.logger.Warn("markdown conversion failed, using plain text", "path", path, "error", err)
		}
	}

	doc.ContentHash = docdump.ComputeHash(doc.Text)
	b.logger.Debug("built document",
		"id", doc.ID,
		"relPath", doc.RelPath,
		"contentHash", doc.ContentHash,
		"textBytes", len(doc.Text),
	)
	return doc
}

// relativeTo returns path relative to root, or the path itself if it
// cannot be made relative.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
