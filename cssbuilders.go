package mdpress

import (
	"fmt"
	"strings"
)

// buildPageCSS generates an @page rule from page settings so both engines
// produce the same layout: the chrome engine has no paper-size flags and
// the rod engine is configured to prefer CSS page size.
func buildPageCSS(p *PageSettings) string {
	if p == nil {
		p = DefaultPageSettings()
	}

	size := strings.ToLower(p.Size)
	orientation := strings.ToLower(p.Orientation)

	return fmt.Sprintf(`/* Page setup */
@page {
  size: %s %s;
  margin: %.2fin;
}
`, size, orientation, p.Margin)
}
