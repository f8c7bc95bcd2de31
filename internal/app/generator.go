package app

import (
	"context"
	"fmt"

	"github.com/yungbote/lessongen/internal/config"
	"github.com/yungbote/lessongen/internal/platform/logger"
	"github.com/yungbote/lessongen/internal/platform/textgen"
	"github.com/yungbote/lessongen/internal/platform/textgen/gemini"
	"github.com/yungbote/lessongen/internal/platform/textgen/mock"
	"github.com/yungbote/lessongen/internal/platform/textgen/oaihttp"
)

func newGenerator(ctx context.Context, cfg config.GeneratorConfig, log *logger.Logger) (textgen.Generator, error) {
	var (
		gen   textgen.Generator
		model string
	)
	switch cfg.Provider {
	case config.ProviderGemini:
		gc := gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model}
		if cfg.Temperature != nil {
			t := float32(*cfg.Temperature)
			gc.Temperature = &t
		}
		g, err := gemini.New(ctx, gc)
		if err != nil {
			return nil, err
		}
		gen, model = g, g.Model()
	case config.ProviderOAIHTTP:
		g, err := oaihttp.New(oaihttp.Config{
			BaseURL:             cfg.BaseURL,
			APIKey:              cfg.APIKey,
			Model:               cfg.Model,
			ChatCompletionsPath: cfg.ChatCompletionsPath,
			Temperature:         cfg.Temperature,
		})
		if err != nil {
			return nil, err
		}
		gen, model = g, g.Model()
	case config.ProviderMock:
		gen, model = mock.New(), "mock"
	default:
		return nil, fmt.Errorf("unsupported generator provider %q", cfg.Provider)
	}
	return instrumentGenerator(cfg.Provider, model, gen, log), nil
}
