package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	exporthtml "github.com/sugarshin/draft-js-export-html"
	"github.com/sugarshin/draft-js-export-html/contentstate"
	"github.com/sugarshin/draft-js-export-html/markdown"
)

// Sentinel errors for CLI I/O and usage failures.
var (
	ErrReadInput     = errors.New("failed to read input")
	ErrWriteOutput   = errors.New("failed to write output")
	ErrUnknownFormat = errors.New("unknown input format")
)

// run executes one conversion with the given flags, writing the result to
// stdout unless --out is set.
func run(flags *cliFlags, stdin io.Reader, stdout io.Writer) error {
	source, err := readInput(flags.in, stdin)
	if err != nil {
		return err
	}

	format, err := resolveFormat(flags.from, flags.in)
	if err != nil {
		return err
	}

	var content *contentstate.ContentState
	var checked contentstate.CheckedState
	switch format {
	case formatRaw:
		content, err = contentstate.FromRaw(source)
	case formatMarkdown:
		content, checked, err = markdown.Parse(source)
	}
	if err != nil {
		return err
	}

	var opts []exporthtml.Option
	if flags.styleTable != "" {
		table, err := resolveStyleTable(flags.styleTable)
		if err != nil {
			return err
		}
		opts = append(opts, exporthtml.WithStyleTable(table))
	}
	if flags.highlight != "" {
		opts = append(opts, exporthtml.WithCodeHighlighting(flags.highlight))
	}

	html, err := exporthtml.New(opts...).Render(content, checked)
	if err != nil {
		return err
	}

	if flags.standalone {
		var css string
		if flags.cssPath != "" {
			data, err := os.ReadFile(flags.cssPath) // #nosec G304 -- user-provided path
			if err != nil {
				return fmt.Errorf("%w: %v", ErrReadInput, err)
			}
			css = string(data)
		}
		html = exporthtml.StandaloneDocument(html, css)
	} else if html != "" {
		html += "\n"
	}

	return writeOutput(flags.out, html, stdout)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return data, nil
}

func writeOutput(path, html string, stdout io.Writer) error {
	if path == "" {
		if _, err := io.WriteString(stdout, html); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// resolveFormat picks the input format, detecting by file extension in auto
// mode. Stdin input in auto mode defaults to raw ContentState JSON.
func resolveFormat(from, inPath string) (string, error) {
	switch from {
	case formatRaw, formatMarkdown:
		return from, nil
	case formatAuto:
		switch strings.ToLower(filepath.Ext(inPath)) {
		case ".md", ".markdown":
			return formatMarkdown, nil
		default:
			return formatRaw, nil
		}
	default:
		return "", fmt.Errorf("%w: %q (want raw, markdown, or auto)", ErrUnknownFormat, from)
	}
}

// resolveStyleTable accepts either a built-in table name or a path to a YAML
// file. Anything that looks like a path (separator or .yaml/.yml suffix)
// loads from disk.
func resolveStyleTable(input string) (exporthtml.StyleTable, error) {
	if strings.ContainsRune(input, os.PathSeparator) ||
		strings.HasSuffix(input, ".yaml") || strings.HasSuffix(input, ".yml") {
		return exporthtml.LoadStyleTableFile(input)
	}
	return exporthtml.BuiltinStyleTable(input)
}
