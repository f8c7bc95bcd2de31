package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/yungbote/lessongen/internal/platform/textgen"
)

// ErrPromptBlocked is wrapped when Gemini refuses the prompt outright.
var ErrPromptBlocked = errors.New("prompt blocked")

const (
	Provider     = "gemini"
	DefaultModel = "gemini-1.5-flash"
)

type Config struct {
	APIKey string
	Model  string
	// Temperature is sent only when non-nil.
	Temperature *float32
}

// models is the slice of *genai.Models this package calls.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator calls the Gemini API once per prompt.
type Generator struct {
	models models
	model  string
	config *genai.GenerateContentConfig
}

func New(ctx context.Context, cfg Config) (*Generator, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return newWithModels(client.Models, cfg), nil
}

func newWithModels(m models, cfg Config) *Generator {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	g := &Generator{models: m, model: model}
	if cfg.Temperature != nil {
		g.config = &genai.GenerateContentConfig{Temperature: genai.Ptr(*cfg.Temperature)}
	}
	return g
}

func (g *Generator) Model() string { return g.model }

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", textgen.Wrap(Provider, err)
	}
	if resp == nil {
		return "", textgen.Wrap(Provider, textgen.ErrEmptyOutput)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
			return "", textgen.Wrap(Provider, fmt.Errorf("%w: %s", ErrPromptBlocked, fb.BlockReason))
		}
		return "", textgen.Wrap(Provider, textgen.ErrEmptyOutput)
	}
	return text, nil
}

var _ textgen.Generator = (*Generator)(nil)
