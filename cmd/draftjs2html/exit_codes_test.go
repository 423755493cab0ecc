package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	exporthtml "github.com/sugarshin/draft-js-export-html"
	"github.com/sugarshin/draft-js-export-html/contentstate"
	"github.com/sugarshin/draft-js-export-html/internal/assets"
	"github.com/sugarshin/draft-js-export-html/markdown"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "read failure", err: fmt.Errorf("%w: boom", ErrReadInput), want: ExitIO},
		{name: "write failure", err: fmt.Errorf("%w: boom", ErrWriteOutput), want: ExitIO},
		{name: "missing file", err: fmt.Errorf("open: %w", os.ErrNotExist), want: ExitIO},
		{name: "permission denied", err: fmt.Errorf("open: %w", os.ErrPermission), want: ExitIO},
		{name: "unknown format", err: fmt.Errorf("%w: %q", ErrUnknownFormat, "xml"), want: ExitUsage},
		{name: "bad raw json", err: fmt.Errorf("%w: unexpected end", contentstate.ErrRawParse), want: ExitUsage},
		{name: "empty markdown", err: markdown.ErrEmptyMarkdown, want: ExitUsage},
		{name: "bad style table", err: fmt.Errorf("%w: yaml", exporthtml.ErrStyleTableParse), want: ExitUsage},
		{name: "bad css property", err: fmt.Errorf("label: %w", exporthtml.ErrInvalidCSSProperty), want: ExitUsage},
		{name: "unknown built-in table", err: fmt.Errorf("%w: %q", assets.ErrStyleTableNotFound, "nope"), want: ExitUsage},
		{name: "invalid asset name", err: fmt.Errorf("%w: %q", assets.ErrInvalidAssetName, "../x"), want: ExitUsage},
		{name: "anything else", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
