package generation

import (
	"context"
	"math"
	"strconv"
	"strings"

	types "github.com/yungbote/lessongen/internal/domain"
	"github.com/yungbote/lessongen/internal/modules/generation/extract"
)

type SubtopicsInput struct {
	Topic string
	// Priority is the raw parameter; it must parse as a number in [0,1].
	Priority string
}

func (u Usecases) Subtopics(ctx context.Context, in SubtopicsInput) ([]string, error) {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return nil, invalidRequest("topic is required")
	}
	rawPriority := strings.TrimSpace(in.Priority)
	if rawPriority == "" {
		return nil, invalidRequest("priority is required")
	}
	priority, err := strconv.ParseFloat(rawPriority, 64)
	if err != nil || math.IsNaN(priority) || priority < 0 || priority > 1 {
		return nil, invalidRequest("invalid priority %q: must be a number between 0 and 1", rawPriority)
	}

	text, log, err := u.generate(ctx, types.SubtopicList{Topic: topic, Priority: priority})
	if err != nil {
		return nil, err
	}
	subtopics := extract.Lines(text)
	if len(subtopics) == 0 {
		log.Warn("no subtopics in generator output", "output_bytes", len(text))
		return nil, extractionEmpty("no subtopics generated")
	}
	log.Info("subtopics generated", "topic", topic, "count", len(subtopics))
	return subtopics, nil
}
