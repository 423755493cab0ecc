// Package contentstate holds the rich-text document model consumed by the
// exporter: typed blocks with rune-aligned style runs, an entity map for
// out-of-band annotations (links, images), and a decoder for the Draft.js
// raw ContentState interchange format.
package contentstate

// BlockType identifies the structural role of a block. The values are the
// Draft.js block type names so raw ContentState JSON maps onto them directly.
type BlockType string

// Known block types. Types outside this list are legal; the exporter renders
// them inside a generic <div>.
const (
	Unstyled          BlockType = "unstyled"
	HeaderOne         BlockType = "header-one"
	HeaderTwo         BlockType = "header-two"
	HeaderThree       BlockType = "header-three"
	HeaderFour        BlockType = "header-four"
	HeaderFive        BlockType = "header-five"
	HeaderSix         BlockType = "header-six"
	UnorderedListItem BlockType = "unordered-list-item"
	OrderedListItem   BlockType = "ordered-list-item"
	CheckableListItem BlockType = "checkable-list-item"
	Blockquote        BlockType = "blockquote"
	CodeBlock         BlockType = "code-block"
	Atomic            BlockType = "atomic"
)

// StyleRun is a maximal contiguous span of characters sharing one style set
// and one entity reference. Length counts runes, not bytes. An empty
// EntityKey means the run carries no entity.
type StyleRun struct {
	Length    int
	Styles    StyleSet
	EntityKey string
}

// Block is one structural unit of a document. Depth encodes list nesting for
// list-item types and is ignored elsewhere. Runs must be pre-merged,
// non-overlapping, and cover Text exactly (in runes); use MergeStyleRuns to
// normalize runs built from range data. Data carries auxiliary per-block
// values such as a code block's language.
type Block struct {
	Key   string
	Type  BlockType
	Depth int
	Text  string
	Runs  []StyleRun
	Data  map[string]string
}

// CheckedState maps block keys to the checked bit of checkable list items.
// Absent keys render unchecked.
type CheckedState map[string]bool

// ContentState is an immutable document: an ordered block sequence plus the
// entity instances its runs reference. The zero value is an empty document.
type ContentState struct {
	blocks   []Block
	entities map[string]Entity
}

// New builds a ContentState from blocks and an entity map. Both are retained
// without copying; callers must not mutate them afterwards.
func New(blocks []Block, entities map[string]Entity) *ContentState {
	return &ContentState{blocks: blocks, entities: entities}
}

// Blocks returns the ordered block sequence.
func (c *ContentState) Blocks() []Block {
	if c == nil {
		return nil
	}
	return c.blocks
}

// Entity resolves an entity key. The second result is false when the key is
// empty or unknown.
func (c *ContentState) Entity(key string) (Entity, bool) {
	if c == nil || key == "" {
		return Entity{}, false
	}
	e, ok := c.entities[key]
	return e, ok
}

// MergeStyleRuns collapses adjacent runs with identical style sets and entity
// keys into maximal runs and drops empty ones. Producers that assemble runs
// from overlapping range data use this to satisfy the pre-merge invariant the
// exporter relies on.
func MergeStyleRuns(runs []StyleRun) []StyleRun {
	merged := make([]StyleRun, 0, len(runs))
	for _, r := range runs {
		if r.Length <= 0 {
			continue
		}
		if n := len(merged); n > 0 {
			prev := &merged[n-1]
			if prev.EntityKey == r.EntityKey && prev.Styles.Equal(r.Styles) {
				prev.Length += r.Length
				continue
			}
		}
		merged = append(merged, r)
	}
	return merged
}
