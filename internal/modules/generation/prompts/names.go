package prompts

type PromptName string

const (
	PromptLeveledMCQ       PromptName = "leveled_mcq"
	PromptLeveledTaggedMCQ PromptName = "leveled_tagged_mcq"
	PromptSubtopicList     PromptName = "subtopic_list"
	PromptContentBody      PromptName = "content_body"
	PromptTopicMCQ         PromptName = "topic_mcq"
)
