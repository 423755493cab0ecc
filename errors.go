package exporthtml

import "errors"

// Sentinel errors for library operations. Other lookups the exporter makes
// at render time (unknown style labels, unmapped entity fields, missing
// entities) degrade silently instead of failing.
var (
	ErrInvalidCSSProperty = errors.New("invalid CSS property name")
	ErrStyleTableParse    = errors.New("failed to parse style table")
)
