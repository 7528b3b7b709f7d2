// Package mock provides hand-written mocks for the docdump interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/docdump"
)

// Compile-time interface verification.
var (
	_ docdump.FileSource      = (*FileSource)(nil)
	_ docdump.Extractor       = (*Extractor)(nil)
	_ docdump.Converter       = (*Converter)(nil)
	_ docdump.DocumentBuilder = (*DocumentBuilder)(nil)
	_ docdump.ArtifactWriter  = (*ArtifactWriter)(nil)
)

// FileSource is a mock implementation of docdump.FileSource.
type FileSource struct {
	DiscoverFn func(ctx context.Context, root, orderFile string) ([]string, error)
}

func (s *FileSource) Discover(ctx context.Context, root, orderFile string) ([]string, error) {
	return s.DiscoverFn(ctx, root, orderFile)
}

// Extractor is a mock implementation of docdump.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docdump.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docdump.ExtractResult, error) {
	return e.ExtractFn(html)
}

// Converter is a mock implementation of docdump.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// DocumentBuilder is a mock implementation of docdump.DocumentBuilder.
type DocumentBuilder struct {
	BuildAllFn func(ctx context.Context, root string, paths []string, progress docdump.BuildProgressFunc) ([]*docdump.Document, error)
}

func (b *DocumentBuilder) BuildAll(ctx context.Context, root string, paths []string, progress docdump.BuildProgressFunc) ([]*docdump.Document, error) {
	return b.BuildAllFn(ctx, root, paths, progress)
}

// ArtifactWriter is a mock implementation of docdump.ArtifactWriter.
type ArtifactWriter struct {
	WriteArtifactFn func(ctx context.Context, content string) error
}

func (w *ArtifactWriter) WriteArtifact(ctx context.Context, content string) error {
	return w.WriteArtifactFn(ctx, content)
}
