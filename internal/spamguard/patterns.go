package spamguard

import (
	"regexp"
	"strings"
)

// Heuristics against throwaway-looking email local parts. These are
// deliberately coarse; false positives are possible, so the set is a
// parameter of the Guard rather than a fixed table.
var defaultPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[asdfghjkl]+$`),     // home row mashing
	regexp.MustCompile(`^[qwertyuiop]+$`),    // top row mashing
	regexp.MustCompile(`^[zxcvbnm]+$`),       // bottom row mashing
	regexp.MustCompile(`^[a-z]{1,2}\d{6,}$`), // a123456 style
}

// suspiciousLocalPart reports whether the local part of an email trips any
// heuristic, with a short reason for logging.
func suspiciousLocalPart(local string, patterns []*regexp.Regexp) (bool, string) {
	local = strings.ToLower(local)

	if allDigits(local) {
		return true, "numeric-only local part"
	}
	if len(local) <= 2 {
		return true, "local part too short"
	}
	if repeatedRune(local, 5) {
		return true, "repeated character"
	}
	for _, p := range patterns {
		if p.MatchString(local) {
			return true, "keyboard pattern"
		}
	}
	return false, ""
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// repeatedRune reports whether s is one rune repeated at least n times.
func repeatedRune(s string, n int) bool {
	runes := []rune(s)
	if len(runes) < n {
		return false
	}
	for _, r := range runes {
		if r != runes[0] {
			return false
		}
	}
	return true
}
