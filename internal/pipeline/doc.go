// Package pipeline implements the Markdown-to-HTML stages of the
// conversion: preprocessing, Goldmark rendering into a styled document
// shell, and CSS injection.
package pipeline
