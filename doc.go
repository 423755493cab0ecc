// Package exporthtml converts rich-text documents in the Draft.js content
// model to HTML.
//
// # Quick Start
//
// Decode a raw ContentState and render it:
//
//	content, err := contentstate.FromRaw(rawJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html, err := exporthtml.Render(content)
//
// The result is a fragment (no <html>/<body> wrapper). Use
// StandaloneDocument to wrap it in a complete page.
//
// # Rendering Model
//
// The exporter walks the flat block sequence once. List nesting, which the
// content model encodes only as an integer depth per block, is rebuilt by
// depth lookahead into properly nested <ul>/<ol> trees. Inline content is
// composed from pre-merged character runs: built-in styles nest in a fixed
// order (bold innermost, then italic, underline, strikethrough, code), open
// style labels are resolved through a swappable style table into a single
// inline-styled span, and entity-carrying runs become anchors or images.
// Spaces that HTML would collapse are preserved as non-breaking spaces.
//
// # Configuration
//
// Use functional options to customize the exporter:
//
//	exp := exporthtml.New(
//	    exporthtml.WithStyleTable(exporthtml.ColorStyles),
//	    exporthtml.WithCodeHighlighting("github"),
//	)
//	html, err := exp.Render(content, checked)
//
// Custom style tables load from YAML via ParseStyleTable or
// LoadStyleTableFile; the built-in tables ship as embedded assets.
//
// # Producing Documents
//
// The contentstate package decodes the Draft.js raw interchange format, and
// the markdown package imports Markdown into the same model:
//
//	content, checked, err := markdown.Parse(src)
//	html, err := exporthtml.New().Render(content, checked)
package exporthtml
