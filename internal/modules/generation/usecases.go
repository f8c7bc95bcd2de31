package generation

import (
	"context"
	"errors"
	"time"

	types "github.com/yungbote/lessongen/internal/domain"
	"github.com/yungbote/lessongen/internal/modules/generation/prompts"
	"github.com/yungbote/lessongen/internal/platform/ctxutil"
	"github.com/yungbote/lessongen/internal/platform/logger"
	"github.com/yungbote/lessongen/internal/platform/textgen"
)

var errNoGenerator = errors.New("no text generator configured")

type Deps struct {
	Log       *logger.Logger
	Generator textgen.Generator
	Prompts   *prompts.Builder
}

// Usecases holds only immutable dependencies; every call is independent.
type Usecases struct {
	deps Deps
}

func New(deps Deps) Usecases {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Prompts == nil {
		deps.Prompts = prompts.NewBuilder()
	}
	return Usecases{deps: deps}
}

// generate builds the prompt for kind and makes the one generator call.
func (u Usecases) generate(ctx context.Context, kind types.RequestKind) (string, *logger.Logger, error) {
	log := u.deps.Log.With(append(ctxutil.LogFields(ctx), "kind", kind.Name())...)
	if u.deps.Generator == nil {
		return "", log, generationFailed(&textgen.GenerationError{Provider: "none", Err: errNoGenerator})
	}

	prompt := u.deps.Prompts.Build(kind)
	start := time.Now()
	raw, err := u.deps.Generator.Generate(ctx, prompt)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		log.Warn("generation failed", "error", err, "duration_ms", elapsed)
		return "", log, generationFailed(err)
	}
	log.Debug("generation finished",
		"prompt_version", u.deps.Prompts.Version(kind),
		"prompt_bytes", len(prompt),
		"output_bytes", len(raw),
		"duration_ms", elapsed,
	)
	return raw, log, nil
}
