package docdump

// ExtractResult holds the content extracted from one HTML file.
type ExtractResult struct {
	// Title is the content of the document's title element, trimmed.
	// Empty when the document has no title element; callers fall back to
	// the file's base name.
	Title string

	// Text is the normalized plain-text body. Boilerplate (nav, menus,
	// scripts, styles) has been removed and whitespace collapsed, but
	// preformatted blocks survive verbatim.
	Text string

	// ContentHTML is the body markup after boilerplate removal, suitable
	// for markdown conversion. May be empty.
	ContentHTML string
}

// Extractor extracts readable content from raw HTML.
// Implementations must tolerate malformed markup and never fail on it.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
