package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{raw: "a\n\n  \nb\n", want: []string{"a", "b"}},
		{raw: "", want: []string{}},
		{raw: "  Variables \r\nLoops\nLoops\nQuiz: Python Basics", want: []string{"Variables", "Loops", "Loops", "Quiz: Python Basics"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, Lines(tc.raw)); diff != "" {
			t.Fatalf("Lines(%q) mismatch (-want +got):\n%s", tc.raw, diff)
		}
	}
}
