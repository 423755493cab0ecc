package contentstate

// Style is an inline style label attached to a character run. The built-in
// labels below form a closed set with dedicated markup; any other label is an
// open, table-driven style resolved through the exporter's style table (and
// ignored when the table has no entry for it).
type Style string

// Built-in inline styles.
const (
	StyleBold          Style = "BOLD"
	StyleItalic        Style = "ITALIC"
	StyleUnderline     Style = "UNDERLINE"
	StyleStrikethrough Style = "STRIKETHROUGH"
	StyleCode          Style = "CODE"
)

// StyleSet is an ordered, duplicate-free set of style labels. Order is
// insertion order and is significant for table-driven styles: later labels
// override earlier ones on conflicting CSS properties.
type StyleSet []Style

// NewStyleSet builds a StyleSet, dropping duplicates while keeping first
// appearance order.
func NewStyleSet(styles ...Style) StyleSet {
	var s StyleSet
	for _, st := range styles {
		s = s.Add(st)
	}
	return s
}

// Has reports whether the set contains the given label.
func (s StyleSet) Has(style Style) bool {
	for _, st := range s {
		if st == style {
			return true
		}
	}
	return false
}

// Add returns a set containing style, appending it unless already present.
func (s StyleSet) Add(style Style) StyleSet {
	if s.Has(style) {
		return s
	}
	return append(s, style)
}

// Equal reports whether two sets hold the same labels in the same order.
func (s StyleSet) Equal(other StyleSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s StyleSet) Clone() StyleSet {
	if s == nil {
		return nil
	}
	out := make(StyleSet, len(s))
	copy(out, s)
	return out
}
