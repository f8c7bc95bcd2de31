package prompts

// Input is the superset of fields the templates read.
// Missing fields render empty strings (templates use missingkey=zero).
type Input struct {
	// Leveled MCQs
	Level       string
	LevelTopics string
	Count       int

	// Topic MCQs and subtopics
	Topic string

	// Subtopics: already formatted so it is embedded exactly as received.
	Priority string

	// Lesson content
	Subtopic string

	// Marker tokens, e.g. "qstn:".
	QuestionMarker string
	OptionsMarker  string
	AnswerMarker   string
	TopicMarker    string
}
