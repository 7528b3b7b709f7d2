// Package trafilatura provides an alternate extraction engine backed by
// go-trafilatura's generic boilerplate detection. Unlike the goquery
// engine it does not rely on known chrome selector classes, at the cost of
// the verbatim code-block and heading-decoration guarantees.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docdump"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docdump.Extractor at compile time.
var _ docdump.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Pages trafilatura cannot make sense of yield an empty result rather than
// an error, so the document is skipped downstream like any other
// empty-bodied input.
func (e *Extractor) Extract(rawHTML string) (*docdump.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &docdump.ExtractResult{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return &docdump.ExtractResult{}, nil
	}

	var contentHTML, text string
	if result.ContentNode != nil {
		if rendered, err := renderNode(result.ContentNode); err == nil {
			contentHTML = rendered
		}
		text = textContent(result.ContentNode)
	}

	return &docdump.ExtractResult{
		Title:       result.Metadata.Title,
		Text:        text,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// textContent collects trimmed text fragments joined by single spaces.
func textContent(n *html.Node) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
