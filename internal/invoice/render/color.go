package render

import (
	"strconv"
	"strings"
)

// hexToRGB converts a "#RRGGBB" color (the "#" is optional, hex digits are
// case-insensitive) into an RGB triple. Malformed input yields black: a bad
// stored brand color must never abort invoice generation.
func hexToRGB(hex string) (r, g, b int) {
	value := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(value) != 6 {
		return 0, 0, 0
	}
	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(parsed >> 16), int(parsed >> 8 & 0xff), int(parsed & 0xff)
}
