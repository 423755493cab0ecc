package main

import (
	"errors"
	"os"

	exporthtml "github.com/sugarshin/draft-js-export-html"
	"github.com/sugarshin/draft-js-export-html/contentstate"
	"github.com/sugarshin/draft-js-export-html/internal/assets"
	"github.com/sugarshin/draft-js-export-html/markdown"
)

// Exit codes for the draftjs2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, input format, or style table
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error. It uses
// errors.Is to check wrapped errors, so callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, ErrUnknownFormat) ||
		errors.Is(err, contentstate.ErrRawParse) ||
		errors.Is(err, markdown.ErrEmptyMarkdown) ||
		errors.Is(err, exporthtml.ErrStyleTableParse) ||
		errors.Is(err, exporthtml.ErrInvalidCSSProperty) ||
		errors.Is(err, assets.ErrStyleTableNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}
