package exporthtml

import (
	"strings"

	"github.com/sugarshin/draft-js-export-html/contentstate"
)

// lineBreak is the placeholder an empty block renders so the element does
// not collapse to nothing.
const lineBreak = "<br/>"

// attrMapping pairs an entity data field with the HTML attribute it feeds.
type attrMapping struct {
	field string
	attr  string
}

// Fixed per-entity-type attribute tables. Fields absent from the entity data
// are omitted from the rendered tag entirely.
var (
	linkAttrs        = []attrMapping{{"url", "href"}, {"rel", "rel"}, {"target", "target"}, {"title", "title"}}
	imageAnchorAttrs = []attrMapping{{"href", "href"}}
	imageAttrs       = []attrMapping{{"src", "src"}, {"alt", "alt"}}
)

// renderBlockContent turns one block's character runs into an inline HTML
// fragment. Whitespace preservation runs on the whole text first, so run
// boundaries cannot dodge the rule; runs are then grouped by entity key and
// each group's sub-runs decorated individually.
func (g *generator) renderBlockContent(block contentstate.Block) (string, error) {
	if block.Text == "" {
		return lineBreak, nil
	}

	if block.Type == contentstate.CodeBlock && g.highlighter != nil {
		if out, ok := g.highlighter.highlight(block.Text, block.Data["language"]); ok {
			return out, nil
		}
		// Highlighting failure falls through to plain rendering.
	}

	runes := []rune(preserveWhitespace(block.Text))
	runs := coveringRuns(block.Runs, len(runes))

	var out strings.Builder
	pos := 0
	for i := 0; i < len(runs); {
		key := runs[i].EntityKey
		var group strings.Builder
		for i < len(runs) && runs[i].EntityKey == key {
			end := pos + runs[i].Length
			if end > len(runes) {
				end = len(runes)
			}
			decorated, err := g.decorate(string(runes[pos:end]), runs[i].Styles, block)
			if err != nil {
				return "", err
			}
			group.WriteString(decorated)
			pos = end
			i++
		}
		if entity, ok := g.resolve(key); ok {
			out.WriteString(renderEntity(entity, group.String()))
		} else {
			out.WriteString(group.String())
		}
	}
	return out.String(), nil
}

// coveringRuns pads the run list so it covers length runes exactly. A block
// with no runs at all becomes one unstyled run.
func coveringRuns(runs []contentstate.StyleRun, length int) []contentstate.StyleRun {
	total := 0
	for _, r := range runs {
		total += r.Length
	}
	if total >= length && len(runs) > 0 {
		return runs
	}
	padded := make([]contentstate.StyleRun, 0, len(runs)+1)
	padded = append(padded, runs...)
	return append(padded, contentstate.StyleRun{Length: length - total})
}

// decorate nests the markup for one styled run. The nesting order is a
// fixed contract regardless of the order styles were added to the set: bold
// innermost, then italic, underline, strikethrough, code, with the merged
// table-driven span outermost. Code inside a code block is not re-wrapped.
func (g *generator) decorate(text string, styles contentstate.StyleSet, block contentstate.Block) (string, error) {
	content := encodeContent(text)
	if styles.Has(contentstate.StyleBold) {
		content = "<strong>" + content + "</strong>"
	}
	if styles.Has(contentstate.StyleItalic) {
		content = "<em>" + content + "</em>"
	}
	if styles.Has(contentstate.StyleUnderline) {
		content = "<ins>" + content + "</ins>"
	}
	if styles.Has(contentstate.StyleStrikethrough) {
		content = "<del>" + content + "</del>"
	}
	if styles.Has(contentstate.StyleCode) && block.Type != contentstate.CodeBlock {
		content = "<code>" + content + "</code>"
	}
	if decl := mergeDeclarations(styles, g.styles); len(decl) > 0 {
		css, err := formatDeclarations(decl)
		if err != nil {
			return "", err
		}
		content = `<span style="` + encodeAttr(css) + `">` + content + `</span>`
	}
	if block.Type == contentstate.CheckableListItem {
		content = g.checkbox(block.Key) + content
	}
	return content, nil
}

func (g *generator) checkbox(key string) string {
	if g.checked[key] {
		return `<input type="checkbox" checked/>`
	}
	return `<input type="checkbox"/>`
}

func (g *generator) resolve(key string) (contentstate.Entity, bool) {
	if key == "" || g.resolver == nil {
		return contentstate.Entity{}, false
	}
	return g.resolver.Entity(key)
}

// renderEntity wraps a rendered entity group. Links wrap their content in an
// anchor; images are a fixed anchor-plus-image structure that replaces the
// run's content outright. Unknown entity types pass the content through.
func renderEntity(entity contentstate.Entity, content string) string {
	switch entity.Type {
	case contentstate.EntityLink:
		return "<a" + stringifyAttrs(entity.Data, linkAttrs) + ">" + content + "</a>"
	case contentstate.EntityImage:
		return "<a" + stringifyAttrs(entity.Data, imageAnchorAttrs) + ">" +
			"<img" + stringifyAttrs(entity.Data, imageAttrs) + " /></a>"
	default:
		return content
	}
}

func stringifyAttrs(data map[string]string, mappings []attrMapping) string {
	var b strings.Builder
	for _, m := range mappings {
		value, ok := data[m.field]
		if !ok {
			continue
		}
		b.WriteString(" " + m.attr + `="` + encodeAttr(value) + `"`)
	}
	return b.String()
}
