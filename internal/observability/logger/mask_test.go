package logger

import "testing"

func TestMaskAuthorization(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Bearer sk_live_abcdef123456", "Bearer ****3456"},
		{"bearer sk_live_abcdef123456", "Bearer ****3456"},
		{"rawtoken12345", "****2345"},
		{"abc", "****abc"},
	}
	for _, tc := range cases {
		if got := MaskAuthorization(tc.in); got != tc.want {
			t.Fatalf("MaskAuthorization(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
