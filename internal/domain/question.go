package domain

import "strings"

// QuestionRecord is one multiple-choice question parsed out of generator text.
// Option count and answer membership are taken as produced.
type QuestionRecord struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Topic         string   `json:"topic,omitempty"`
}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseLevel matches exactly; "Beginner" is not a level.
func ParseLevel(raw string) (Level, bool) {
	switch Level(strings.TrimSpace(raw)) {
	case LevelBeginner:
		return LevelBeginner, true
	case LevelIntermediate:
		return LevelIntermediate, true
	case LevelAdvanced:
		return LevelAdvanced, true
	default:
		return "", false
	}
}

// Marker names a field inside one line of generator output. The literal token
// written by the generator is the name followed by a colon.
type Marker string

const (
	MarkerQuestion Marker = "qstn"
	MarkerOptions  Marker = "opt"
	MarkerAnswer   Marker = "ans"
	MarkerTopic    Marker = "top"
)

func (m Marker) Token() string { return string(m) + ":" }

var (
	QuestionMarkers    = []Marker{MarkerQuestion, MarkerOptions, MarkerAnswer}
	TopicTaggedMarkers = []Marker{MarkerQuestion, MarkerOptions, MarkerAnswer, MarkerTopic}
)
