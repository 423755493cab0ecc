package exporthtml

import (
	"strings"

	"github.com/sugarshin/draft-js-export-html/contentstate"
)

// indentUnit is the cosmetic indentation step for nested output.
const indentUnit = "  "

// entityResolver is the read-only entity lookup a generator uses for the
// duration of one render. *contentstate.ContentState satisfies it.
type entityResolver interface {
	Entity(key string) (contentstate.Entity, bool)
}

// generator walks a flat block sequence once, left to right, and assembles
// the nested HTML for it. All state lives for a single generate call: the
// cursor only moves forward (child recursion advances it past consumed
// blocks), at most one wrapper tag is open at a time per nesting scope, and
// the indent level is purely cosmetic.
type generator struct {
	blocks      []contentstate.Block
	resolver    entityResolver
	checked     contentstate.CheckedState
	styles      StyleTable
	highlighter *codeHighlighter

	out         []string
	cursor      int
	indentLevel int
	wrapper     string
}

func (g *generator) generate() (string, error) {
	for g.cursor < len(g.blocks) {
		if err := g.processBlock(); err != nil {
			return "", err
		}
	}
	g.closeWrapper()
	return strings.TrimSpace(strings.Join(g.out, "")), nil
}

// processBlock renders the block at the cursor: wrapper bookkeeping, start
// tags, inline content, an optional nested child scope, end tags. The cursor
// ends up on the first block this one does not own.
func (g *generator) processBlock() error {
	block := g.blocks[g.cursor]

	// Close before open, never interleaved with sibling content.
	if w := wrapperTag(block.Type); w != g.wrapper {
		g.closeWrapper()
		if w != "" {
			g.openWrapper(w)
		}
	}

	g.indent()
	g.writeStartTags(block.Type)

	content, err := g.renderBlockContent(block)
	if err != nil {
		return err
	}
	g.out = append(g.out, content)

	// Lookahead: a strictly deeper following block starts a nested list
	// scope rendered inside this item, before its end tag. The scope gets a
	// fresh wrapper context; ours is restored afterwards.
	if next, ok := g.peek(); ok && canHaveDepth(block.Type) && next.Depth > block.Depth {
		g.out = append(g.out, "\n")
		enclosing := g.wrapper
		g.wrapper = ""
		g.indentLevel++
		g.cursor++
		if err := g.processNested(next.Depth); err != nil {
			return err
		}
		g.wrapper = enclosing
		g.indentLevel--
		g.indent()
	} else {
		g.cursor++
	}

	g.writeEndTags(block.Type)
	return nil
}

// processNested consumes the run of blocks forming one nested scope. The
// scope entered at depth owns every following block at that depth or deeper;
// the first shallower block ends it and closes the scope's wrapper.
func (g *generator) processNested(depth int) error {
	for g.cursor < len(g.blocks) && g.blocks[g.cursor].Depth >= depth {
		if err := g.processBlock(); err != nil {
			return err
		}
	}
	g.closeWrapper()
	return nil
}

func (g *generator) peek() (contentstate.Block, bool) {
	if g.cursor+1 >= len(g.blocks) {
		return contentstate.Block{}, false
	}
	return g.blocks[g.cursor+1], true
}

func (g *generator) indent() {
	if g.indentLevel > 0 {
		g.out = append(g.out, strings.Repeat(indentUnit, g.indentLevel))
	}
}

func (g *generator) openWrapper(tag string) {
	g.wrapper = tag
	g.indent()
	g.out = append(g.out, "<"+tag+">\n")
	g.indentLevel++
}

func (g *generator) closeWrapper() {
	if g.wrapper == "" {
		return
	}
	g.indentLevel--
	g.indent()
	g.out = append(g.out, "</"+g.wrapper+">\n")
	g.wrapper = ""
}

func (g *generator) writeStartTags(t contentstate.BlockType) {
	for _, tag := range blockTags(t) {
		g.out = append(g.out, "<"+tag+">")
	}
}

// writeEndTags closes in reverse order of the start tags.
func (g *generator) writeEndTags(t contentstate.BlockType) {
	tags := blockTags(t)
	var b strings.Builder
	for i := len(tags) - 1; i >= 0; i-- {
		b.WriteString("</" + tags[i] + ">")
	}
	b.WriteString("\n")
	g.out = append(g.out, b.String())
}
