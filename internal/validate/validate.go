package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reUsername = regexp.MustCompile(`^[A-Za-z0-9._-]{3,30}$`)
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reUsername.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces a minimum length only; the seeded demo accounts predate
// any stronger policy.
func Password(s string) bool {
	return len(s) >= 6 && len(s) <= 72
}

// ID validates an opaque resource identifier (user/product/order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Limit parses the list page size: default 50, clamped to 200.
func Limit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 50
	}
	if n > 200 {
		return 200
	}
	return n
}

// Skip parses the list offset, floored at 0.
func Skip(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Search trims and caps a catalog search term.
func Search(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
