package exporthtml

import "strings"

// StandaloneDocument wraps a rendered fragment in a complete HTML5 document,
// injecting css as a <style> block when non-empty. The library itself only
// produces fragments; this is for callers (and the CLI) that want a file a
// browser can open directly.
func StandaloneDocument(fragment, css string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Document</title>\n")
	if css != "" {
		b.WriteString("<style>\n")
		b.WriteString(css)
		if !strings.HasSuffix(css, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("</style>\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(fragment)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
