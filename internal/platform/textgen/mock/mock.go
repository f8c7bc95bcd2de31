package mock

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/yungbote/lessongen/internal/platform/textgen"
)

const Provider = "mock"

// Generator returns canned text that follows whichever line protocol the
// prompt declares. Output depends only on the prompt.
type Generator struct {
	Questions int
}

func New() *Generator {
	return &Generator{Questions: 4}
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", textgen.Wrap(Provider, err)
	}
	seed := seedOf(prompt)
	switch {
	case strings.Contains(prompt, "qstn:"):
		return g.questions(seed, strings.Contains(prompt, "top:")), nil
	case strings.Contains(prompt, "subtopics"):
		return subtopics(), nil
	case strings.TrimSpace(prompt) != "":
		return lesson(), nil
	default:
		return "", textgen.Wrap(Provider, textgen.ErrEmptyOutput)
	}
}

func (g *Generator) questions(seed uint32, tagged bool) string {
	n := g.Questions
	if n <= 0 {
		n = 1
	}
	var b strings.Builder
	b.WriteString("Here are your questions:\n")
	for i := 0; i < n; i++ {
		a := int(seed%50) + i
		fmt.Fprintf(&b, "qstn:What is %d + %d? opt:%d,%d,%d,%d ans:%d", a, i, a+i-1, a+i, a+i+1, a+i+2, a+i)
		if tagged {
			b.WriteString(" top:arithmetic")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func subtopics() string {
	return "Core ideas\nWorked examples\nCommon mistakes\nPractice problems\nQuick Check Quiz\n"
}

func lesson() string {
	return "Let's dig in! A *variable* is just a name for a value.\n" +
		"$ Assign with `x = 1`\n" +
		"$ Read it back with `print(x)`\n"
}

func seedOf(prompt string) uint32 {
	h := sha256.Sum256([]byte(prompt))
	return binary.LittleEndian.Uint32(h[:4])
}

var _ textgen.Generator = (*Generator)(nil)
