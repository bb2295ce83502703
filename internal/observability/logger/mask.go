package logger

import "strings"

// MaskAuthorization masks a bearer credential, preserving the scheme so
// request logs stay useful without leaking tokens.
func MaskAuthorization(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.Fields(value)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return "Bearer " + maskLast4(parts[1])
	}
	return maskLast4(value)
}

func maskLast4(value string) string {
	if len(value) <= 4 {
		return "****" + value
	}
	return "****" + value[len(value)-4:]
}
