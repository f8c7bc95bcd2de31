package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/lessongen/internal/domain"
	"github.com/yungbote/lessongen/internal/http/response"
	"github.com/yungbote/lessongen/internal/modules/generation"
	"github.com/yungbote/lessongen/internal/platform/envutil"
)

// GenerationService is the subset of generation.Usecases the handlers call.
type GenerationService interface {
	LeveledMCQs(ctx context.Context, in generation.LeveledMCQInput) ([]types.QuestionRecord, error)
	Subtopics(ctx context.Context, in generation.SubtopicsInput) ([]string, error)
	Content(ctx context.Context, in generation.ContentInput) (string, error)
	TopicMCQs(ctx context.Context, in generation.TopicMCQInput) ([]types.QuestionRecord, error)
}

type GenerationHandler struct {
	svc GenerationService
}

func NewGenerationHandler(svc GenerationService) *GenerationHandler {
	return &GenerationHandler{svc: svc}
}

// GET /generate?level=beginner&with_topics=true
func (h *GenerationHandler) LeveledMCQs(c *gin.Context) {
	mcqs, err := h.svc.LeveledMCQs(c.Request.Context(), generation.LeveledMCQInput{
		Level:     c.Query("level"),
		TagTopics: envutil.ParseBool(c.Query("with_topics")),
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"mcqs": mcqs})
}

// GET /subtopics?topic=...&priority=0.7
func (h *GenerationHandler) Subtopics(c *gin.Context) {
	subtopics, err := h.svc.Subtopics(c.Request.Context(), generation.SubtopicsInput{
		Topic:    c.Query("topic"),
		Priority: c.Query("priority"),
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"subtopics": subtopics})
}

// GET /content?subtopic=...
func (h *GenerationHandler) Content(c *gin.Context) {
	content, err := h.svc.Content(c.Request.Context(), generation.ContentInput{
		Subtopic: c.Query("subtopic"),
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"content": content})
}

// GET /topic-mcqs?topic=...
func (h *GenerationHandler) TopicMCQs(c *gin.Context) {
	mcqs, err := h.svc.TopicMCQs(c.Request.Context(), generation.TopicMCQInput{
		Topic: c.Query("topic"),
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"mcqs": mcqs})
}
