// Package markdown imports Markdown documents into the contentstate model,
// so Markdown sources can be rendered through the exporter like any other
// rich-text document.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/sugarshin/draft-js-export-html/contentstate"
)

// ErrEmptyMarkdown indicates there was nothing to parse.
var ErrEmptyMarkdown = errors.New("markdown source cannot be empty")

var parser = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough, // ~~text~~ -> STRIKETHROUGH
		extension.TaskList,      // - [x] item -> checkable-list-item
	),
)

// Parse converts Markdown into a ContentState. Nested lists become flat
// list-item blocks with increasing depth, emphasis and friends become style
// runs, links and images become entities, and task-list markers become
// checkable list items whose checked bits are returned in the CheckedState.
func Parse(source []byte) (*contentstate.ContentState, contentstate.CheckedState, error) {
	if len(bytes.TrimSpace(source)) == 0 {
		return nil, nil, ErrEmptyMarkdown
	}

	b := &builder{
		entities: make(map[string]contentstate.Entity),
		checked:  make(contentstate.CheckedState),
	}

	doc := parser.Parser().Parse(text.NewReader(source))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		b.block(n, source, 0)
	}

	return contentstate.New(b.blocks, b.entities), b.checked, nil
}

// builder accumulates blocks, entities, and checked state during one parse.
type builder struct {
	blocks    []contentstate.Block
	entities  map[string]contentstate.Entity
	checked   contentstate.CheckedState
	entitySeq int
}

func (b *builder) block(n ast.Node, src []byte, depth int) {
	switch node := n.(type) {
	case *ast.Heading:
		b.add(headerType(node.Level), depth, b.inlineOf(node, src), nil)
	case *ast.Paragraph, *ast.TextBlock:
		b.add(contentstate.Unstyled, 0, b.inlineOf(n, src), nil)
	case *ast.Blockquote:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			b.add(contentstate.Blockquote, 0, b.inlineOf(c, src), nil)
		}
	case *ast.FencedCodeBlock:
		var data map[string]string
		if lang := node.Language(src); len(lang) > 0 {
			data = map[string]string{"language": string(lang)}
		}
		b.addCode(node, src, data)
	case *ast.CodeBlock:
		b.addCode(node, src, nil)
	case *ast.List:
		b.list(node, src, depth)
	}
	// Thematic breaks and raw HTML have no block representation and are
	// dropped.
}

func (b *builder) list(list *ast.List, src []byte, depth int) {
	itemType := contentstate.UnorderedListItem
	if list.IsOrdered() {
		itemType = contentstate.OrderedListItem
	}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		b.listItem(item, src, depth, itemType)
	}
}

// listItem renders one list item block, then any nested lists at depth+1.
// A task-list checkbox inside the item turns it into a checkable list item
// and records its state under the generated block key.
func (b *builder) listItem(item ast.Node, src []byte, depth int, itemType contentstate.BlockType) {
	st := newInlineState()
	var nested []*ast.List
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if list, ok := c.(*ast.List); ok {
			nested = append(nested, list)
			continue
		}
		if st.text.Len() > 0 {
			st.append("\n", nil, "")
		}
		b.inline(c, src, nil, "", st)
	}

	blockType := itemType
	if st.task != nil {
		blockType = contentstate.CheckableListItem
	}
	key := b.add(blockType, depth, st, nil)
	if st.task != nil {
		b.checked[key] = *st.task
	}

	for _, list := range nested {
		b.list(list, src, depth+1)
	}
}

func (b *builder) addCode(n ast.Node, src []byte, data map[string]string) {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	st := newInlineState()
	st.append(strings.TrimSuffix(buf.String(), "\n"), nil, "")
	b.add(contentstate.CodeBlock, 0, st, data)
}

// add appends a block built from the accumulated inline state and returns
// its generated key.
func (b *builder) add(t contentstate.BlockType, depth int, st *inlineState, data map[string]string) string {
	key := fmt.Sprintf("b%03d", len(b.blocks)+1)
	b.blocks = append(b.blocks, contentstate.Block{
		Key:   key,
		Type:  t,
		Depth: depth,
		Text:  st.text.String(),
		Runs:  contentstate.MergeStyleRuns(st.runs),
		Data:  data,
	})
	return key
}

func (b *builder) addEntity(t contentstate.EntityType, data map[string]string) string {
	key := strconv.Itoa(b.entitySeq)
	b.entitySeq++
	b.entities[key] = contentstate.Entity{Type: t, Data: data}
	return key
}

// inlineState accumulates a block's text and aligned style runs.
type inlineState struct {
	text     strings.Builder
	runs     []contentstate.StyleRun
	task     *bool
	trimLead bool
}

func newInlineState() *inlineState {
	return &inlineState{}
}

func (s *inlineState) append(text string, styles contentstate.StyleSet, entityKey string) {
	if s.trimLead {
		text = strings.TrimPrefix(text, " ")
		s.trimLead = false
	}
	if text == "" {
		return
	}
	s.text.WriteString(text)
	s.runs = append(s.runs, contentstate.StyleRun{
		Length:    utf8.RuneCountInString(text),
		Styles:    styles.Clone(),
		EntityKey: entityKey,
	})
}

func (b *builder) inlineOf(n ast.Node, src []byte) *inlineState {
	st := newInlineState()
	b.inline(n, src, nil, "", st)
	return st
}

// inline walks an inline subtree carrying the active style set and entity
// key down into text leaves.
func (b *builder) inline(n ast.Node, src []byte, styles contentstate.StyleSet, entityKey string, st *inlineState) {
	switch node := n.(type) {
	case *ast.Text:
		st.append(string(node.Segment.Value(src)), styles, entityKey)
		if node.SoftLineBreak() || node.HardLineBreak() {
			st.append("\n", styles, entityKey)
		}
		return
	case *ast.String:
		st.append(string(node.Value), styles, entityKey)
		return
	case *ast.CodeSpan:
		styles = styles.Clone().Add(contentstate.StyleCode)
	case *ast.Emphasis:
		if node.Level >= 2 {
			styles = styles.Clone().Add(contentstate.StyleBold)
		} else {
			styles = styles.Clone().Add(contentstate.StyleItalic)
		}
	case *east.Strikethrough:
		styles = styles.Clone().Add(contentstate.StyleStrikethrough)
	case *east.TaskCheckBox:
		checked := node.IsChecked
		st.task = &checked
		// Only the marker belongs to the checkbox; the space separating it
		// from the item text comes through as part of the next text leaf.
		st.trimLead = true
		return
	case *ast.Link:
		data := map[string]string{"url": string(node.Destination)}
		if len(node.Title) > 0 {
			data["title"] = string(node.Title)
		}
		entityKey = b.addEntity(contentstate.EntityLink, data)
	case *ast.AutoLink:
		url := string(node.URL(src))
		key := b.addEntity(contentstate.EntityLink, map[string]string{"url": url})
		st.append(string(node.Label(src)), styles, key)
		return
	case *ast.Image:
		data := map[string]string{
			"src": string(node.Destination),
			"alt": plainText(node, src),
		}
		if len(node.Title) > 0 {
			data["title"] = string(node.Title)
		}
		key := b.addEntity(contentstate.EntityImage, data)
		st.append(" ", styles, key)
		return
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.inline(c, src, styles, entityKey, st)
	}
}

// plainText flattens an inline subtree to its literal text.
func plainText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(src))
		case *ast.String:
			buf.Write(node.Value)
		default:
			buf.WriteString(plainText(c, src))
		}
	}
	return buf.String()
}

func headerType(level int) contentstate.BlockType {
	switch level {
	case 1:
		return contentstate.HeaderOne
	case 2:
		return contentstate.HeaderTwo
	case 3:
		return contentstate.HeaderThree
	case 4:
		return contentstate.HeaderFour
	case 5:
		return contentstate.HeaderFive
	default:
		return contentstate.HeaderSix
	}
}
