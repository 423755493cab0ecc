package exporthtml

import "github.com/sugarshin/draft-js-export-html/contentstate"

// blockTags returns the HTML tags opened for a block, outermost first. Block
// types without a dedicated mapping render inside a generic <div>.
func blockTags(t contentstate.BlockType) []string {
	switch t {
	case contentstate.Unstyled:
		return []string{"p"}
	case contentstate.HeaderOne:
		return []string{"h1"}
	case contentstate.HeaderTwo:
		return []string{"h2"}
	case contentstate.HeaderThree:
		return []string{"h3"}
	case contentstate.HeaderFour:
		return []string{"h4"}
	case contentstate.HeaderFive:
		return []string{"h5"}
	case contentstate.HeaderSix:
		return []string{"h6"}
	case contentstate.UnorderedListItem, contentstate.OrderedListItem, contentstate.CheckableListItem:
		return []string{"li"}
	case contentstate.Blockquote:
		return []string{"blockquote"}
	case contentstate.CodeBlock:
		return []string{"pre", "code"}
	case contentstate.Atomic:
		return []string{"figure"}
	default:
		return []string{"div"}
	}
}

// wrapperTag returns the list container a block must live in, or "" for
// blocks that stand on their own.
func wrapperTag(t contentstate.BlockType) string {
	switch t {
	case contentstate.UnorderedListItem, contentstate.CheckableListItem:
		return "ul"
	case contentstate.OrderedListItem:
		return "ol"
	default:
		return ""
	}
}

// canHaveDepth reports whether a block type participates in depth-based list
// nesting.
func canHaveDepth(t contentstate.BlockType) bool {
	switch t {
	case contentstate.UnorderedListItem, contentstate.OrderedListItem, contentstate.CheckableListItem:
		return true
	default:
		return false
	}
}
