package exporthtml

import "github.com/sugarshin/draft-js-export-html/contentstate"

// Exporter converts rich-text documents to HTML fragments. It is stateless
// across renders: every Render call builds and discards its own traversal
// state, so one Exporter may be shared by concurrent renders of independent
// documents as long as those documents are not mutated during the call.
type Exporter struct {
	styles      StyleTable
	highlighter *codeHighlighter
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithStyleTable swaps the table mapping open style labels to inline CSS.
// The default is ClassicStyles.
func WithStyleTable(table StyleTable) Option {
	return func(e *Exporter) {
		e.styles = table
	}
}

// WithCodeHighlighting enables syntax highlighting of code blocks using the
// named chroma style ("github", "monokai", ...). An unknown name falls back
// to chroma's default style.
func WithCodeHighlighting(styleName string) Option {
	return func(e *Exporter) {
		e.highlighter = newCodeHighlighter(styleName)
	}
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{styles: ClassicStyles}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render converts a document to a single HTML fragment: no <html>/<body>
// wrapper, leading and trailing whitespace trimmed. The checked map supplies
// the state of checkable list items by block key; nil means all unchecked.
// The document and its entity map are only read.
//
// The only error Render returns is ErrInvalidCSSProperty from a style table
// carrying a malformed property name; all other absent or unknown data
// renders as no contribution.
func (e *Exporter) Render(content *contentstate.ContentState, checked contentstate.CheckedState) (string, error) {
	g := &generator{
		blocks:      content.Blocks(),
		resolver:    content,
		checked:     checked,
		styles:      e.styles,
		highlighter: e.highlighter,
	}
	return g.generate()
}

// Render converts a document with the default Exporter configuration.
func Render(content *contentstate.ContentState) (string, error) {
	return New().Render(content, nil)
}
