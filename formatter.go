package docdump

import (
	"fmt"
	"strings"
)

// Fixed layout of the combined artifact.
const (
	artifactTitle    = "Combined Documentation - Plain Text Export"
	artifactPreamble = "This file contains documentation converted to plain text."
	tocHeader        = "TABLE OF CONTENTS"
	contentHeader    = "DOCUMENTATION CONTENT"

	titleRuleWidth   = 50
	tocRuleWidth     = 20
	contentRuleWidth = 25
	bannerRuleWidth  = 80
)

// FormatTOCEntry formats one table-of-contents line:
// right-aligned width-3 ordinal, period, title, relative path in parens.
func FormatTOCEntry(e TOCEntry) string {
	return fmt.Sprintf("%3d. %s (%s)", e.Number, e.Title, e.RelPath)
}

// FormatSectionBanner formats the delimiter block that precedes each
// document's body in the combined artifact.
func FormatSectionBanner(relPath, title string) string {
	rule := strings.Repeat("=", bannerRuleWidth)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(rule)
	b.WriteString("\nFILE: ")
	b.WriteString(relPath)
	b.WriteString("\nTITLE: ")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n\n")
	return b.String()
}

// TableOfContents derives TOC entries from documents. Documents whose text
// is empty after trimming are skipped and do not consume an ordinal.
func TableOfContents(docs []*Document) []TOCEntry {
	var entries []TOCEntry
	for _, doc := range docs {
		if strings.TrimSpace(doc.Text) == "" {
			continue
		}
		entries = append(entries, TOCEntry{
			Number:  len(entries) + 1,
			Title:   doc.Title,
			RelPath: doc.RelPath,
		})
	}
	return entries
}

// BuildCombined assembles the whole artifact: fixed header, table of
// contents, and one banner-prefixed section per non-empty document, in the
// given order. totalFiles is the number of discovered input files, which
// may exceed the number of emitted sections.
func BuildCombined(docs []*Document, totalFiles int) string {
	var b strings.Builder

	b.WriteString(artifactTitle + "\n")
	b.WriteString(strings.Repeat("=", titleRuleWidth) + "\n\n")
	b.WriteString(artifactPreamble + "\n")
	fmt.Fprintf(&b, "Generated from %d HTML files.\n\n", totalFiles)

	b.WriteString(tocHeader + "\n")
	b.WriteString(strings.Repeat("=", tocRuleWidth) + "\n\n")
	for _, entry := range TableOfContents(docs) {
		b.WriteString(FormatTOCEntry(entry) + "\n")
	}
	b.WriteString("\n")

	b.WriteString("\n" + contentHeader + "\n")
	b.WriteString(strings.Repeat("=", contentRuleWidth) + "\n")
	for _, doc := range docs {
		if strings.TrimSpace(doc.Text) == "" {
			continue
		}
		b.WriteString(FormatSectionBanner(doc.RelPath, doc.Title))
		b.WriteString(doc.Text)
		b.WriteString("\n\n")
	}

	return b.String()
}
