package docdump

import "context"

// Document represents one processed input file.
// It is immutable once produced by a DocumentBuilder and is discarded after
// being folded into the combined output.
type Document struct {
	ID          string `json:"id"`
	Path        string `json:"path"`
	RelPath     string `json:"relPath"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	ContentHash string `json:"contentHash"`
	Position    int    `json:"position"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if d.RelPath == "" {
		return Errorf(EINVALID, "document relative path required")
	}
	return nil
}

// TOCEntry is one line of the generated table of contents. Numbers are
// 1-based and contiguous over documents that produced non-empty text.
type TOCEntry struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	RelPath string `json:"relPath"`
}

// BuildProgress reports progress during document building.
type BuildProgress struct {
	Path    string
	RelPath string
	Index   int
	Total   int
	Error   error
}

// BuildProgressFunc is called as files are processed.
type BuildProgressFunc func(BuildProgress)

// FileSource discovers input files under a root directory.
// Implementations hide traversal order, hidden-directory pruning, and
// ordering-file handling.
type FileSource interface {
	// Discover returns a deduplicated, deterministically ordered list of
	// absolute input file paths. orderFile may be empty; an unreadable
	// ordering file degrades to plain discovery, it is not an error.
	Discover(ctx context.Context, root, orderFile string) ([]string, error)
}

// DocumentBuilder reads and converts discovered files into documents.
// Implementations hide file I/O, extraction engine selection, and optional
// parallelism. The returned slice preserves the order of paths.
type DocumentBuilder interface {
	BuildAll(ctx context.Context, root string, paths []string, progress BuildProgressFunc) ([]*Document, error)
}

// ArtifactWriter persists the combined output artifact.
// The whole artifact is written in a single pass; a write failure is fatal.
type ArtifactWriter interface {
	WriteArtifact(ctx context.Context, content string) error
}
