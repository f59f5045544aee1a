package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// These are guaranteed to not conflict with any standard characters
// and will pass through Goldmark unchanged (no WithUnsafe needed).
// Post-processing converts these to <mark> tags after HTML generation.
const (
	MarkStartPlaceholder = "" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "" // U+E001: Private Use Area end
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Highlight syntax ==text==
	highlightPattern = regexp.MustCompile(`==(.*?)==`)

	// Fenced code block delimiter (backticks or tildes)
	fencedCodeBlock = regexp.MustCompile("^(```|~~~)")

	// List item patterns (unordered and ordered)
	unorderedListPattern = regexp.MustCompile(`^\s*[-*+]\s`)
	orderedListPattern   = regexp.MustCompile(`^\s*[0-9]+\.\s`)

	// Header pattern (ATX style)
	headerPattern = regexp.MustCompile(`^#{1,6}\s`)

	// Indented code block (4 spaces or tab)
	indentedCodeBlock = regexp.MustCompile(`^(    |\t)`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies transformations before CommonMark conversion.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for
// conversion. Order matters: normalize line endings first, then structural
// fixes, then syntax conversions.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = NormalizeLineEndings(content)
	content = EnsureBlankBeforeLists(content)
	content = ConvertHighlights(content)
	content = CompressBlankLines(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits consecutive blank lines to 2 maximum.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// ConvertHighlights transforms ==text== to placeholder markers.
// The placeholders are converted to <mark> tags after Goldmark processing
// via ConvertMarkPlaceholders. This avoids needing html.WithUnsafe().
func ConvertHighlights(content string) string {
	return highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
// Called after Goldmark HTML conversion to finalize highlight markup.
// This is the second half of the ==highlight== feature, keeping Goldmark
// secure (no WithUnsafe) while still supporting inline HTML marks.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}

// EnsureBlankBeforeLists adds a blank line before list items (-, *, +, 1.)
// when the previous line is text that is not itself a list item, header,
// or blank line. CommonMark requires the separation for "lazy" lists that
// follow a paragraph directly. Skips content inside code blocks.
func EnsureBlankBeforeLists(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	inCodeBlock := false
	var previousLine string

	for i, line := range lines {
		// Track fenced code blocks
		if fencedCodeBlock.MatchString(line) {
			inCodeBlock = !inCodeBlock
		}

		// Skip processing inside code blocks or indented code blocks
		if inCodeBlock || indentedCodeBlock.MatchString(line) {
			result = append(result, line)
			previousLine = line
			continue
		}

		if i > 0 && isListItem(line) && !isBlankLine(previousLine) &&
			!isListItem(previousLine) && !headerPattern.MatchString(previousLine) {
			result = append(result, "")
		}

		result = append(result, line)
		previousLine = line
	}

	return strings.Join(result, "\n")
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isListItem returns true if the line starts with a list marker (-, *, +, or 1.).
func isListItem(line string) bool {
	return unorderedListPattern.MatchString(line) || orderedListPattern.MatchString(line)
}
