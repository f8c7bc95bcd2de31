package prompts

import (
	"fmt"
	"strconv"

	types "github.com/yungbote/lessongen/internal/domain"
)

const (
	LeveledQuestionCount = 20
	TopicQuestionCount   = 10
)

var levelTopics = map[types.Level]string{
	types.LevelBeginner:     "variables, loops, and basic syntax",
	types.LevelIntermediate: "functions, classes, and data structures",
	types.LevelAdvanced:     "algorithms, data science, and optimization",
}

// Builder renders request kinds into prompt text. It is immutable after
// NewBuilder and safe for concurrent use.
type Builder struct {
	templates map[PromptName]Template
}

// NewBuilder compiles every prompt. A template that does not parse is a
// programming error and panics.
func NewBuilder() *Builder {
	b := &Builder{templates: map[PromptName]Template{}}
	for _, s := range specs() {
		t, err := MakeTemplate(s)
		if err != nil {
			panic(err)
		}
		b.templates[t.Name] = t
	}
	return b
}

// Build renders the prompt for kind. Callers validate parameters first; an
// unknown level renders with an empty topic list.
func (b *Builder) Build(kind types.RequestKind) string {
	name, in := b.resolve(kind)
	t, ok := b.templates[name]
	if !ok {
		panic(fmt.Sprintf("prompts: no template for %s", name))
	}
	return t.render(in)
}

// Version reports the template version used for kind, for logging.
func (b *Builder) Version(kind types.RequestKind) int {
	name, _ := b.resolve(kind)
	return b.templates[name].Version
}

func (b *Builder) resolve(kind types.RequestKind) (PromptName, Input) {
	in := Input{
		QuestionMarker: types.MarkerQuestion.Token(),
		OptionsMarker:  types.MarkerOptions.Token(),
		AnswerMarker:   types.MarkerAnswer.Token(),
		TopicMarker:    types.MarkerTopic.Token(),
	}
	switch k := kind.(type) {
	case types.LeveledMCQ:
		in.Level = string(k.Level)
		in.LevelTopics = levelTopics[k.Level]
		in.Count = LeveledQuestionCount
		if k.TagTopics {
			return PromptLeveledTaggedMCQ, in
		}
		return PromptLeveledMCQ, in
	case types.SubtopicList:
		in.Topic = k.Topic
		in.Priority = FormatPriority(k.Priority)
		return PromptSubtopicList, in
	case types.ContentBody:
		in.Subtopic = k.Subtopic
		return PromptContentBody, in
	case types.TopicMCQ:
		in.Topic = k.Topic
		in.Count = TopicQuestionCount
		return PromptTopicMCQ, in
	default:
		panic(fmt.Sprintf("prompts: unsupported request kind %T", kind))
	}
}

// FormatPriority renders p with the shortest exact decimal form.
func FormatPriority(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
