// Package goquery implements HTML content extraction using goquery.
package goquery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docdump"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docdump.Extractor at compile time.
var _ docdump.Extractor = (*Extractor)(nil)

// boilerplateSelectors match subtrees that are removed entirely before text
// extraction: navigation chrome, menus, executable code, and the head.
// The title is read before removal.
var boilerplateSelectors = []string{
	".nosearch",
	".menu",
	".searchmenu",
	"script",
	"style",
	"head",
}

// headingRe matches lines treated as headings: an uppercase letter followed
// only by letters, digits, whitespace, periods, and commas. A best-effort
// guess, not a structural parse.
var headingRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9\s.,]+$`)

var (
	blankRunRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
	horizRunRe = regexp.MustCompile(`[ \t]+`)
)

const (
	headingMaxLen    = 200
	headingRuleWidth = 60
)

// Extractor extracts plain text from HTML documentation pages.
// It removes boilerplate subtrees, preserves preformatted blocks verbatim,
// decorates heading-like lines, and normalizes whitespace.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the title and normalized text.
// Malformed markup never causes an error; the underlying parser repairs it.
func (e *Extractor) Extract(rawHTML string) (*docdump.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docdump.Errorf(docdump.EINVALID, "failed to parse HTML: %v", err)
	}

	// Title must be read before the head subtree is removed.
	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, selector := range boilerplateSelectors {
		doc.Find(selector).Remove()
	}

	// Clean body markup for the optional markdown output mode, captured
	// before code blocks are replaced with placeholder tokens.
	var contentHTML string
	if body := doc.Find("body"); body.Length() > 0 {
		if inner, err := body.First().Html(); err == nil {
			contentHTML = inner
		}
	}

	// Replace each preformatted/code element's content with an indexed
	// placeholder so the raw text can be restored verbatim at the end.
	// The counter is scoped to this document. A pre and its nested code
	// are both captured; the nested element detaches when its parent's
	// text is replaced, so its placeholder never surfaces and its
	// restoration is a no-op, keeping placeholder N aligned with block N.
	var codeBlocks []string
	doc.Find("pre, code").Each(func(i int, sel *goquery.Selection) {
		codeBlocks = append(codeBlocks, sel.Text())
		sel.SetText(codePlaceholder(i))
	})

	var text string
	if body := doc.Find("body"); body.Length() > 0 {
		text = joinedText(body.Nodes)
	} else {
		text = joinedText(doc.Selection.Nodes)
	}

	// Move each placeholder onto its own line so the restored block ends
	// up surrounded by blank lines.
	for i := range codeBlocks {
		token := codePlaceholder(i)
		text = strings.ReplaceAll(text, token, "\n\n"+token+"\n\n")
	}

	text = decorateHeadings(text)
	text = normalizeWhitespace(text)

	// Restore code blocks last, after whitespace collapsing, so their
	// internal formatting survives byte for byte.
	for i, code := range codeBlocks {
		text = strings.ReplaceAll(text, codePlaceholder(i), code)
	}

	return &docdump.ExtractResult{
		Title:       title,
		Text:        text,
		ContentHTML: contentHTML,
	}, nil
}

func codePlaceholder(i int) string {
	return fmt.Sprintf("__CODE_BLOCK_%d__", i)
}

// joinedText collects text fragments in document order, trims each, drops
// empty ones, and joins the rest with single spaces. Comments contribute
// nothing.
func joinedText(nodes []*html.Node) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		case html.CommentNode:
			// skip
		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// decorateHeadings rewrites heading-like lines as a blank line, a rule,
// the heading, another rule, and a trailing blank line. False positives
// and negatives are expected.
func decorateHeadings(text string) string {
	rule := strings.Repeat("=", headingRuleWidth)
	lines := strings.Split(text, "\n")
	formatted := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" && len(line) < headingMaxLen && headingRe.MatchString(line) {
			formatted = append(formatted, "\n\n"+rule+"\n"+line+"\n"+rule+"\n")
		} else {
			formatted = append(formatted, line)
		}
	}

	return strings.Join(formatted, "\n")
}

// normalizeWhitespace collapses runs of three or more newlines to one blank
// line, collapses horizontal whitespace runs to a single space, and trims
// the whole text.
func normalizeWhitespace(text string) string {
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	text = horizRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
