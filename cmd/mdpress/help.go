package main

import (
	"fmt"
	"io"
)

// usageText is the CLI help shown on --help and usage errors.
const usageText = `Usage: mdpress [flags] <input.md> [output.pdf]

Convert a Markdown document to a styled PDF using headless Chrome.
The output path defaults to the input path with a .pdf extension.

Flags:
  -o, --output PATH       output file (alternative to the positional argument)
      --style PATH        extra CSS file appended to the built-in style
  -c, --config NAME|PATH  config file name or path
  -t, --timeout DURATION  PDF generation timeout (e.g., 30s, 2m)
      --engine NAME       PDF engine: chrome (default), rod
      --browser PATH      Chrome/Chromium binary to probe first
  -p, --page-size SIZE    page size: letter (default), a4, legal
      --orientation NAME  page orientation: portrait (default), landscape
      --margin INCHES     page margin in inches (0.25-3.0, default 0.5)
      --html              keep the intermediate HTML next to the PDF
      --html-only         output HTML only, skip PDF
  -q, --quiet             only show errors
  -v, --verbose           show detailed progress
      --version           print version and exit

Examples:
  mdpress report.md
  mdpress report.md out/report.pdf
  mdpress --page-size a4 --orientation landscape report.md
  mdpress --engine rod --timeout 2m large-spec.md
`

// printUsage writes the CLI usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
