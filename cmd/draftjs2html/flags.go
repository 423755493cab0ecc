package main

import (
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/sugarshin/draft-js-export-html/internal/assets"
)

// Input format values for --from.
const (
	formatAuto     = "auto"
	formatRaw      = "raw"
	formatMarkdown = "markdown"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	in         string
	out        string
	from       string
	styleTable string
	highlight  string
	standalone bool
	cssPath    string
	verbose    bool
	version    bool
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("draftjs2html", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.in, "in", "i", "", "input file (default: stdin)")
	fs.StringVarP(&f.out, "out", "o", "", "output file (default: stdout)")
	fs.StringVar(&f.from, "from", formatAuto,
		"input format: raw, markdown, or auto (detect by file extension)")
	fs.StringVar(&f.styleTable, "style-table", "",
		"style table: built-in name ("+strings.Join(assets.StyleTableNames(), ", ")+") or YAML file path")
	fs.StringVar(&f.highlight, "highlight", "",
		"chroma style name to syntax-highlight code blocks")
	fs.BoolVar(&f.standalone, "standalone", false,
		"wrap the fragment in a complete HTML document")
	fs.StringVar(&f.cssPath, "css", "",
		"CSS file to embed in the document (implies --standalone)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if f.cssPath != "" {
		f.standalone = true
	}
	return f, nil
}
