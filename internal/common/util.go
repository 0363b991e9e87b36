package common

import "strings"

// WipeByteArray overwrites b with zeros. Passwords read from the terminal are
// wiped once the auth flow has copied what it needs. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Blank reports whether s is empty after trimming whitespace.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// LastN returns the last n runes of s, or s itself when it is shorter.
func LastN(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
