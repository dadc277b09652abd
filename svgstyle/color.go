// Normalizes the SVG presentation attributes
// (colors, dimensions, fill and stroke options)
// to their Android vector drawable equivalent.
package svgstyle

import (
	"strings"
)

// Transparent is the fully transparent color, used for
// missing or "none" paints.
const Transparent = "#00000000"

// opaqueAlpha is appended to 6 digits colors
const opaqueAlpha = "FF"

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// isHexColor returns true for #xxx colors with `n` hexadecimal digits
func isHexColor(color string, n int) bool {
	return len(color) == n+1 && color[0] == '#' && isHexDigits(color[1:])
}

// NormalizeColor converts a SVG paint to a 9 characters color.
// An empty or "none" color is Transparent, #rgb is expanded to #rrggbb,
// and the opaque alpha is appended to #rrggbb, giving #rrggbbFF.
// A 9 characters color starting with #00, including one obtained
// by the previous steps (#000, #00ff00, ...), is Transparent.
// Other values are returned unchanged.
func NormalizeColor(color string) string {
	if color == "" || strings.EqualFold(color, "none") {
		return Transparent
	}

	if isHexColor(color, 3) {
		color = string([]byte{'#', color[1], color[1], color[2], color[2], color[3], color[3]})
	}

	if isHexColor(color, 6) {
		color += opaqueAlpha
	}

	if strings.HasPrefix(color, "#00") && len(color) == 9 {
		return Transparent
	}
	return color
}
