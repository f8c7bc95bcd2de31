package generation

import (
	"context"
	"strings"

	types "github.com/yungbote/lessongen/internal/domain"
	"github.com/yungbote/lessongen/internal/modules/generation/extract"
)

type LeveledMCQInput struct {
	Level     string
	TagTopics bool
}

type TopicMCQInput struct {
	Topic string
}

func (u Usecases) LeveledMCQs(ctx context.Context, in LeveledMCQInput) ([]types.QuestionRecord, error) {
	raw := strings.TrimSpace(in.Level)
	if raw == "" {
		return nil, invalidRequest("level is required")
	}
	level, ok := types.ParseLevel(raw)
	if !ok {
		return nil, invalidRequest("invalid level %q", raw)
	}

	kind := types.LeveledMCQ{Level: level, TagTopics: in.TagTopics}
	text, log, err := u.generate(ctx, kind)
	if err != nil {
		return nil, err
	}
	mcqs := extract.Records(text, kind.Markers(), log)
	if len(mcqs) == 0 {
		log.Warn("no valid questions in generator output", "output_bytes", len(text))
		return nil, extractionEmpty("no valid questions generated")
	}
	log.Info("questions generated", "level", level, "count", len(mcqs))
	return mcqs, nil
}

// TopicMCQs tolerates an empty extraction and returns an empty, non-nil slice,
// unlike LeveledMCQs.
func (u Usecases) TopicMCQs(ctx context.Context, in TopicMCQInput) ([]types.QuestionRecord, error) {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return nil, invalidRequest("topic is required")
	}

	kind := types.TopicMCQ{Topic: topic}
	text, log, err := u.generate(ctx, kind)
	if err != nil {
		return nil, err
	}
	mcqs := extract.Records(text, kind.Markers(), log)
	if len(mcqs) == 0 {
		log.Warn("no valid questions in generator output", "output_bytes", len(text))
	}
	log.Info("questions generated", "topic", topic, "count", len(mcqs))
	return mcqs, nil
}
