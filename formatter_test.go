package docdump_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docdump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTOCEntry(t *testing.T) {
	t.Parallel()

	t.Run("pads ordinal to width 3", func(t *testing.T) {
		t.Parallel()

		got := docdump.FormatTOCEntry(docdump.TOCEntry{
			Number:  1,
			Title:   "Getting Started",
			RelPath: "intro.html",
		})

		assert.Equal(t, "  1. Getting Started (intro.html)", got)
	})

	t.Run("wide ordinals are not truncated", func(t *testing.T) {
		t.Parallel()

		got := docdump.FormatTOCEntry(docdump.TOCEntry{
			Number:  1234,
			Title:   "Appendix",
			RelPath: "appendix.html",
		})

		assert.Equal(t, "1234. Appendix (appendix.html)", got)
	})
}

func TestFormatSectionBanner(t *testing.T) {
	t.Parallel()

	got := docdump.FormatSectionBanner("docs/api.html", "API Reference")

	rule := strings.Repeat("=", 80)
	want := "\n\n" + rule + "\nFILE: docs/api.html\nTITLE: API Reference\n" + rule + "\n\n"
	assert.Equal(t, want, got)
}

func TestTableOfContents(t *testing.T) {
	t.Parallel()

	t.Run("skipped documents do not consume an ordinal", func(t *testing.T) {
		t.Parallel()

		docs := []*docdump.Document{
			{RelPath: "a.html", Title: "A", Text: "content a"},
			{RelPath: "b.html", Title: "B", Text: "   \n\t  "},
			{RelPath: "c.html", Title: "C", Text: "content c"},
		}

		entries := docdump.TableOfContents(docs)

		require.Len(t, entries, 2)
		assert.Equal(t, 1, entries[0].Number)
		assert.Equal(t, "a.html", entries[0].RelPath)
		assert.Equal(t, 2, entries[1].Number)
		assert.Equal(t, "c.html", entries[1].RelPath)
	})

	t.Run("returns nil for no documents", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, docdump.TableOfContents(nil))
	})
}

func TestBuildCombined(t *testing.T) {
	t.Parallel()

	t.Run("single non-empty document yields one entry and one banner", func(t *testing.T) {
		t.Parallel()

		docs := []*docdump.Document{
			{RelPath: "empty.html", Title: "Empty", Text: ""},
			{RelPath: "full.html", Title: "Full", Text: "Hello world."},
		}

		got := docdump.BuildCombined(docs, 2)

		assert.Contains(t, got, "Generated from 2 HTML files.")
		assert.Contains(t, got, "  1. Full (full.html)")
		assert.NotContains(t, got, "empty.html")
		assert.Equal(t, 1, strings.Count(got, "FILE: "))
		assert.Contains(t, got, "FILE: full.html\nTITLE: Full\n")
		assert.Contains(t, got, "Hello world.")
	})

	t.Run("fixed header layout", func(t *testing.T) {
		t.Parallel()

		got := docdump.BuildCombined(nil, 0)

		lines := strings.Split(got, "\n")
		require.Greater(t, len(lines), 8)
		assert.Equal(t, "Combined Documentation - Plain Text Export", lines[0])
		assert.Equal(t, strings.Repeat("=", 50), lines[1])
		assert.Equal(t, "", lines[2])
		assert.Contains(t, got, "TABLE OF CONTENTS\n"+strings.Repeat("=", 20)+"\n\n")
		assert.Contains(t, got, "\nDOCUMENTATION CONTENT\n"+strings.Repeat("=", 25)+"\n")
	})

	t.Run("sections appear in document order", func(t *testing.T) {
		t.Parallel()

		docs := []*docdump.Document{
			{RelPath: "b.html", Title: "B", Text: "second alphabetically, first by order"},
			{RelPath: "a.html", Title: "A", Text: "first alphabetically, second by order"},
		}

		got := docdump.BuildCombined(docs, 2)

		assert.Less(t, strings.Index(got, "FILE: b.html"), strings.Index(got, "FILE: a.html"))
		assert.Contains(t, got, "  1. B (b.html)\n  2. A (a.html)\n")
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		t.Parallel()

		docs := []*docdump.Document{
			{RelPath: "a.html", Title: "A", Text: "alpha"},
			{RelPath: "b.html", Title: "B", Text: "beta"},
		}

		assert.Equal(t, docdump.BuildCombined(docs, 2), docdump.BuildCombined(docs, 2))
	})
}
