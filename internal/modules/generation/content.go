package generation

import (
	"context"
	"strings"

	types "github.com/yungbote/lessongen/internal/domain"
)

type ContentInput struct {
	Subtopic string
}

// Content returns the lesson text exactly as generated; inline markup is left
// for the client to render.
func (u Usecases) Content(ctx context.Context, in ContentInput) (string, error) {
	subtopic := strings.TrimSpace(in.Subtopic)
	if subtopic == "" {
		return "", invalidRequest("subtopic is required")
	}

	text, log, err := u.generate(ctx, types.ContentBody{Subtopic: subtopic})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", extractionEmpty("no content generated")
	}
	log.Info("content generated", "subtopic", subtopic, "content_bytes", len(text))
	return text, nil
}
