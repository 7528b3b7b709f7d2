// Package fs provides filesystem-based discovery and artifact storage.
package fs

import (
	"bufio"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/docdump"
)

// htmlExt is the literal input extension. The match is case-sensitive;
// alternate extensions do not qualify.
const htmlExt = ".html"

// Ensure DirSource implements docdump.FileSource at compile time.
var _ docdump.FileSource = (*DirSource)(nil)

// DirSource discovers HTML files by recursively walking a directory tree.
// Hidden directories are pruned from traversal entirely. An optional
// ordering file fixes the relative order of listed files ahead of the
// alphabetical default.
type DirSource struct {
	logger *slog.Logger
}

// NewDirSource creates a new DirSource. A nil logger defaults to the
// package-level slog logger.
func NewDirSource(logger *slog.Logger) *DirSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirSource{logger: logger}
}

// Discover returns the deduplicated, deterministically ordered list of
// input files under root. If orderFile names a readable ordering file, its
// valid entries come first in the given order; all remaining discovered
// files follow, stably sorted by basename. With no usable ordering file the
// whole set is sorted by basename.
func (s *DirSource) Discover(ctx context.Context, root, orderFile string) ([]string, error) {
	seed := s.readOrderFile(root, orderFile)

	discovered, err := walkHTMLFiles(ctx, root)
	if err != nil {
		return nil, err
	}

	if len(seed) == 0 {
		sortByBasename(discovered)
		return discovered, nil
	}

	seen := make(map[string]bool, len(seed))
	var files []string
	for _, path := range seed {
		if seen[path] {
			continue
		}
		seen[path] = true
		files = append(files, path)
	}

	sortByBasename(discovered)
	for _, path := range discovered {
		if seen[path] {
			continue
		}
		seen[path] = true
		files = append(files, path)
	}

	return files, nil
}

// readOrderFile reads the ordering file and returns the seed list of
// resolved paths. Blank lines and #-comments are ignored; entries must
// exist on disk and carry the input extension. An unreadable ordering file
// is a recovered failure: a warning is logged and discovery proceeds as if
// no ordering file was given.
func (s *DirSource) readOrderFile(root, orderFile string) []string {
	if orderFile == "" {
		return nil
	}
	if _, err := os.Stat(orderFile); err != nil {
		return nil
	}

	f, err := os.Open(orderFile)
	if err != nil {
		s.logger.Warn("could not read order file", "path", orderFile, "error", err)
		return nil
	}
	defer f.Close()

	var seed []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		path := filepath.Join(root, line)
		if !strings.HasSuffix(path, htmlExt) {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		seed = append(seed, path)
	}
	if err := scanner.Err(); err != nil {
		s.logger.Warn("could not read order file", "path", orderFile, "error", err)
		return nil
	}

	return seed
}

// walkHTMLFiles recursively collects qualifying files under root.
// Directories whose name begins with a dot are excluded from traversal,
// not just from results.
func walkHTMLFiles(ctx context.Context, root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), htmlExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// sortByBasename stably sorts paths by filename only. Paths with duplicate
// basenames in different subdirectories keep their relative order.
func sortByBasename(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return filepath.Base(paths[i]) < filepath.Base(paths[j])
	})
}
