package fs

import (
	"context"
	"os"

	"github.com/fwojciec/docdump"
)

// Ensure Writer implements docdump.ArtifactWriter at compile time.
var _ docdump.ArtifactWriter = (*Writer)(nil)

// Writer writes the combined artifact to a single file, overwriting any
// existing file at that path.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output path.
func (w *Writer) Path() string {
	return w.path
}

// WriteArtifact writes the whole artifact in one pass. A failure here is
// fatal to the run; no partial recovery is attempted.
func (w *Writer) WriteArtifact(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(w.path, []byte(content), 0644)
}
