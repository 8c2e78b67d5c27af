// Package query holds the lenient parsers applied to raw listing parameters.
package query

import (
	"strconv"
	"strings"
)

// PositiveInt parses s as a base-10 integer and returns fallback for anything
// that is not strictly positive.
func PositiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// SplitNames splits a comma separated list, trimming and dropping blanks and
// duplicates while keeping first-seen order.
func SplitNames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
