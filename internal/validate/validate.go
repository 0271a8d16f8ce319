package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reHandle = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	reID     = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reHex    = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Handle validates a product handle (lowercase slug).
func Handle(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 64 && reHandle.MatchString(s)
}

// ID validates a simple resource identifier (variant/template/field/option/design ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// HexColor validates a #RRGGBB color.
func HexColor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reHex.MatchString(s)
}

// CanvasSize parses a preview canvas size, clamped to a sane range.
func CanvasSize(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 500
	}
	if n < 100 {
		return 100
	}
	if n > 2000 {
		return 2000
	}
	return n
}
