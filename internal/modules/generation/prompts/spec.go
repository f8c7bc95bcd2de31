package prompts

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Spec is the declaration format for one prompt. Text is a Go template over
// Input.
type Spec struct {
	Name    PromptName
	Version int
	Text    string
}

// Template is a compiled Spec.
type Template struct {
	Name    PromptName
	Version int
	render  func(Input) string
}

func MakeTemplate(s Spec) (Template, error) {
	if strings.TrimSpace(string(s.Name)) == "" {
		return Template{}, fmt.Errorf("missing prompt name")
	}
	if s.Version <= 0 {
		return Template{}, fmt.Errorf("invalid version for %s", s.Name)
	}
	if strings.TrimSpace(s.Text) == "" {
		return Template{}, fmt.Errorf("missing text for %s", s.Name)
	}
	t, err := template.New(string(s.Name)).Option("missingkey=zero").Parse(s.Text)
	if err != nil {
		return Template{}, fmt.Errorf("%s template parse: %w", s.Name, err)
	}
	return Template{
		Name:    s.Name,
		Version: s.Version,
		render: func(in Input) string {
			var b bytes.Buffer
			_ = t.Execute(&b, in)
			return collapse(b.String())
		},
	}, nil
}

// collapse joins the template's source lines with single spaces so prompts can
// be written across lines but are sent as one paragraph.
func collapse(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
