package exporthtml

import "strings"

// nbsp is the sentinel a preserved space becomes before encoding.
const nbsp = '\u00a0'

// contentEscaper encodes literal text for element content. Newlines become a
// line break element followed by a real newline so the output stays readable.
// It is never applied to attribute values or to already-built tag strings.
var contentEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	string(nbsp), "&nbsp;",
	"\n", "<br/>\n",
)

// attrEscaper encodes attribute values. No whitespace handling here.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func encodeContent(text string) string {
	return contentEscaper.Replace(text)
}

func encodeAttr(value string) string {
	return attrEscaper.Replace(value)
}

// preserveWhitespace replaces every space that HTML would collapse (leading,
// trailing, or immediately preceded by another space) with a non-breaking
// space. Interior single spaces are left alone, and in an interior run of
// spaces every space after the first becomes non-breaking. The check reads
// the original neighbor, not the converted one. Runs once per block, before
// run splitting.
func preserveWhitespace(text string) string {
	runes := []rune(text)
	out := make([]rune, len(runes))
	for i, r := range runes {
		if r == ' ' && (i == 0 || i == len(runes)-1 || runes[i-1] == ' ') {
			out[i] = nbsp
		} else {
			out[i] = r
		}
	}
	return string(out)
}
