package extract

import "strings"

// Lines returns the non-blank lines of raw, trimmed, in order. Duplicates are
// kept.
func Lines(raw string) []string {
	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
