// Package assets holds the embedded print stylesheet applied to every
// generated document.
package assets

import _ "embed"

//go:embed styles/default.css
var defaultStyle string

// DefaultStyle returns the built-in print CSS, including the code
// highlighting palette for chroma classes.
func DefaultStyle() string {
	return defaultStyle
}
