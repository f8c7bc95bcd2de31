package app

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/lessongen/internal/platform/ctxutil"
	"github.com/yungbote/lessongen/internal/platform/logger"
	"github.com/yungbote/lessongen/internal/platform/textgen"
)

const tracerName = "github.com/yungbote/lessongen/internal/app"

type instrumentedGenerator struct {
	provider string
	model    string
	inner    textgen.Generator
	tracer   trace.Tracer
	log      *logger.Logger
}

func instrumentGenerator(provider, model string, inner textgen.Generator, log *logger.Logger) textgen.Generator {
	if inner == nil {
		return nil
	}
	if log == nil {
		log = logger.Nop()
	}
	return &instrumentedGenerator{
		provider: provider,
		model:    model,
		inner:    inner,
		tracer:   otel.Tracer(tracerName),
		log:      log,
	}
}

func (g *instrumentedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := g.tracer.Start(ctx, "textgen.generate", trace.WithAttributes(
		attribute.String("textgen.provider", g.provider),
		attribute.String("textgen.model", g.model),
		attribute.Int("textgen.prompt_bytes", len(prompt)),
	))
	defer span.End()

	start := time.Now()
	out, err := g.inner.Generate(ctx, prompt)
	dur := time.Since(start)

	fields := append([]interface{}{
		"provider", g.provider,
		"model", g.model,
		"duration_ms", dur.Milliseconds(),
	}, ctxutil.LogFields(ctx)...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.log.Warn("text generation failed", append(fields, "error", err)...)
		return "", err
	}
	span.SetAttributes(attribute.Int("textgen.output_bytes", len(out)))
	g.log.Debug("text generation finished", append(fields, "output_bytes", len(out))...)
	return out, nil
}
