package exporthtml

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// codeHighlighter renders code-block text through chroma with inline styles.
// The output is a fragment meant to sit inside the exporter's own
// <pre><code> tags, so the formatter is told not to emit its own <pre>.
type codeHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func newCodeHighlighter(styleName string) *codeHighlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &codeHighlighter{
		style:     style,
		formatter: chromahtml.New(chromahtml.PreventSurroundingPre(true)),
	}
}

// highlight returns the highlighted fragment for code. The language comes
// from the block's data map; when unknown, chroma picks by content analysis
// before falling back to plain text. Any failure reports ok=false so the
// caller can degrade to escaped plain rendering.
func (h *codeHighlighter) highlight(code, language string) (string, bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", false
	}
	return b.String(), true
}
