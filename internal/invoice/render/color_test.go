package render

import "testing"

func TestHexToRGBDecodesWellFormedColors(t *testing.T) {
	cases := []struct {
		hex     string
		r, g, b int
	}{
		{"#3b82f6", 59, 130, 246},
		{"3b82f6", 59, 130, 246},
		{"#3B82F6", 59, 130, 246},
		{"#000000", 0, 0, 0},
		{"#ffffff", 255, 255, 255},
		{"#10b981", 16, 185, 129},
	}
	for _, tc := range cases {
		r, g, b := hexToRGB(tc.hex)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("hexToRGB(%q) = (%d,%d,%d), want (%d,%d,%d)", tc.hex, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestHexToRGBDefaultsToBlack(t *testing.T) {
	for _, hex := range []string{"blue", "#zzzzzz", "", "#fff", "#3b82f6aa", "#-12345"} {
		r, g, b := hexToRGB(hex)
		if r != 0 || g != 0 || b != 0 {
			t.Fatalf("hexToRGB(%q) = (%d,%d,%d), want black", hex, r, g, b)
		}
	}
}
