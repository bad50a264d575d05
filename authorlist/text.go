package authorlist

import (
	"log/slog"
	"strings"
)

// isXMLChar reports whether r may appear in XML 1.0 character data.
func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// xmlText drops characters XML 1.0 cannot carry. encoding/xml would
// otherwise write U+FFFD in their place.
func xmlText(field, s string) string {
	dropped := 0
	clean := strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		dropped++
		return -1
	}, s)
	if dropped > 0 {
		slog.Warn("removed characters not allowed in XML", "field", field, "value", clean, "removed", dropped)
	}
	return clean
}
