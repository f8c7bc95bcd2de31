package domain

// RequestKind selects the prompt template and marker set for one generation.
// The set of kinds is closed.
type RequestKind interface {
	requestKind()
	Name() string
}

type LeveledMCQ struct {
	Level Level
	// TagTopics asks the generator to append a top: field to every line.
	TagTopics bool
}

type SubtopicList struct {
	Topic string
	// Priority is in [0,1]; higher means a more novice audience.
	Priority float64
}

type ContentBody struct {
	Subtopic string
}

type TopicMCQ struct {
	Topic string
}

func (LeveledMCQ) requestKind()   {}
func (SubtopicList) requestKind() {}
func (ContentBody) requestKind()  {}
func (TopicMCQ) requestKind()     {}

func (LeveledMCQ) Name() string   { return "leveled_mcq" }
func (SubtopicList) Name() string { return "subtopic_list" }
func (ContentBody) Name() string  { return "content_body" }
func (TopicMCQ) Name() string     { return "topic_mcq" }

func (k LeveledMCQ) Markers() []Marker {
	if k.TagTopics {
		return TopicTaggedMarkers
	}
	return QuestionMarkers
}

func (TopicMCQ) Markers() []Marker { return QuestionMarkers }
