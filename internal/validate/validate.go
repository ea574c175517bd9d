package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// Product codes are exactly 8 alphanumeric characters.
var reCode = regexp.MustCompile(`^[A-Za-z0-9]{8}$`)

// Code trims and validates a product code.
func Code(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reCode.MatchString(s)
}

// ProductName trims and enforces the 2-character minimum.
func ProductName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len([]rune(s)) >= 2
}

// Sector trims a sector filter; blank means "no filter requested".
func Sector(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Days parses a day-window query value, falling back to def for missing or
// unusable input. Clamped to a year to avoid abuse.
func Days(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return def
	}
	if n > 365 {
		return 365
	}
	return n
}

// Threshold parses a stock threshold query value, falling back to def.
func Threshold(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return def
	}
	return n
}
