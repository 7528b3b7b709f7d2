package docdump

// Converter converts HTML to Markdown.
// Used for the optional markdown output mode; the input should be clean
// HTML (e.g., the ContentHTML of an ExtractResult).
type Converter interface {
	Convert(html string) (string, error)
}
