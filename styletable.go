package exporthtml

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/sugarshin/draft-js-export-html/contentstate"
	"github.com/sugarshin/draft-js-export-html/internal/assets"
)

// CSSProperty is one CSS declaration. Name is written camelCase (fontSize)
// and hyphenated when formatted.
type CSSProperty struct {
	Name  string
	Value string
}

// StyleDecl is an ordered list of CSS declarations for one style label.
type StyleDecl []CSSProperty

// StyleTable maps open style labels to the CSS they contribute. Labels not
// present in the table contribute nothing when rendered.
type StyleTable map[string]StyleDecl

// Built-in style tables, parsed from embedded configuration. ClassicStyles
// carries the numbered COLOR*/BGCOLOR* labels plus named SIZE_* labels;
// ColorStyles carries named color and background labels.
var (
	ClassicStyles = mustBuiltinStyleTable("classic")
	ColorStyles   = mustBuiltinStyleTable("colors")
)

// BuiltinStyleTable loads one of the embedded style tables by name.
func BuiltinStyleTable(name string) (StyleTable, error) {
	data, err := assets.StyleTable(name)
	if err != nil {
		return nil, err
	}
	return ParseStyleTable(data)
}

func mustBuiltinStyleTable(name string) StyleTable {
	table, err := BuiltinStyleTable(name)
	if err != nil {
		panic("exporthtml: built-in style table " + name + ": " + err.Error())
	}
	return table
}

// ParseStyleTable parses a YAML style table: a mapping from label to an
// ordered mapping of camelCase CSS property names to string values.
// Declaration order within a label is preserved. Property names are
// validated here so a bad table fails at load time, not mid-render.
func ParseStyleTable(data []byte) (StyleTable, error) {
	var raw map[string]yaml.MapSlice
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleTableParse, err)
	}

	table := make(StyleTable, len(raw))
	for label, props := range raw {
		decl := make(StyleDecl, 0, len(props))
		for _, item := range props {
			name, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: label %q has a non-string property name", ErrStyleTableParse, label)
			}
			if _, err := hyphenate(name); err != nil {
				return nil, fmt.Errorf("label %q: %w", label, err)
			}
			value, err := scalarString(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: label %q property %q: %v", ErrStyleTableParse, label, name, err)
			}
			decl = append(decl, CSSProperty{Name: name, Value: value})
		}
		table[label] = decl
	}
	return table, nil
}

// LoadStyleTableFile reads and parses a YAML style table from disk.
func LoadStyleTableFile(path string) (StyleTable, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("loading style table %q: %w", path, err)
	}
	return ParseStyleTable(data)
}

func scalarString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(val), nil
	default:
		return "", fmt.Errorf("value %v is not a scalar", v)
	}
}

// mergeDeclarations collects the CSS contributed by every table-driven label
// in the set, in set order. A later label overrides an earlier one on a
// conflicting property but keeps the property's original position.
func mergeDeclarations(styles contentstate.StyleSet, table StyleTable) StyleDecl {
	var merged StyleDecl
	for _, label := range styles {
		decl, ok := table[string(label)]
		if !ok {
			continue
		}
		for _, p := range decl {
			if i := merged.index(p.Name); i >= 0 {
				merged[i].Value = p.Value
			} else {
				merged = append(merged, p)
			}
		}
	}
	return merged
}

func (d StyleDecl) index(name string) int {
	for i, p := range d {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// formatDeclarations renders a declaration list as the body of an inline
// style attribute, e.g. "color: red; font-size: 12px".
func formatDeclarations(d StyleDecl) (string, error) {
	parts := make([]string, 0, len(d))
	for _, p := range d {
		name, err := hyphenate(p.Name)
		if err != nil {
			return "", err
		}
		parts = append(parts, name+": "+p.Value)
	}
	return strings.Join(parts, "; "), nil
}

// hyphenate converts a camelCase property name to hyphen-case. It is the one
// input validation in the rendering path: an empty name or one containing
// anything but ASCII letters, digits, or hyphens fails with
// ErrInvalidCSSProperty.
func hyphenate(property string) (string, error) {
	if property == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidCSSProperty)
	}
	var b strings.Builder
	for i, r := range property {
		switch {
		case r >= 'a' && r <= 'z', r == '-':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteByte('-')
			b.WriteRune(r - 'A' + 'a')
		case r >= '0' && r <= '9' && i > 0:
			b.WriteRune(r)
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidCSSProperty, property)
		}
	}
	return b.String(), nil
}
