package prompts

const markerRules = `
Start the question with '{{.QuestionMarker}}', the options with '{{.OptionsMarker}}' with each option separated by a comma,
and the correct answer with '{{.AnswerMarker}}'.`

const lineRules = `
Do not provide any other message and do not use special characters or formatting unless necessary in the questions.
Separate each question set with a newline.
Put a question, its options and its answer on a single line with only spaces separating them.`

func specs() []Spec {
	return []Spec{
		{
			Name:    PromptLeveledMCQ,
			Version: 1,
			Text: `
Generate {{.Count}} {{.Level}}-level Python multiple choice questions (MCQs) about {{.LevelTopics}}.
For each question, provide 4 options.` + markerRules + lineRules,
		},
		{
			Name:    PromptLeveledTaggedMCQ,
			Version: 1,
			Text: `
Generate {{.Count}} {{.Level}}-level Python multiple choice questions (MCQs) about {{.LevelTopics}}.
For each question, provide 4 options.` + markerRules + `
After the answer, name the topic the question covers, starting it with '{{.TopicMarker}}'.` + lineRules,
		},
		{
			Name:    PromptSubtopicList,
			Version: 1,
			Text: `
Generate between 3 and 6 subtopics for learning {{.Topic}}.
The learner's priority value is {{.Priority}} on a scale from 0 to 1, where a higher value means the audience is
more of a beginner and needs more elementary subtopics, and a lower value means the audience already knows the basics.
Adjust the depth of the subtopics to that priority.
After the subtopics, add one final line containing a short title for a quiz on {{.Topic}}.
Put each subtopic and the quiz title on its own line.
Do not number the lines, do not use bullets or markers, and do not provide any other message.`,
		},
		{
			Name:    PromptContentBody,
			Version: 1,
			Text: `
Write a short lesson on {{.Subtopic}} in an informal, friendly tone, as if explaining it to a friend.
Wrap any code in backticks (` + "`" + `).
Start each bullet point with a '$' character.
Wrap words that should be bold in single '*' characters.
Do not use backticks, '$' or '*' anywhere else in the text.`,
		},
		{
			Name:    PromptTopicMCQ,
			Version: 1,
			Text: `
Generate {{.Count}} multiple choice questions (MCQs) about {{.Topic}}.
For each question, provide 4 options.` + markerRules + lineRules,
		},
	}
}
