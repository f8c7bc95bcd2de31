package app

import (
	httpH "github.com/yungbote/lessongen/internal/http/handlers"
	"github.com/yungbote/lessongen/internal/modules/generation"
)

type Handlers struct {
	Generation *httpH.GenerationHandler
	Health     *httpH.HealthHandler
}

func wireHandlers(uc generation.Usecases) Handlers {
	return Handlers{
		Generation: httpH.NewGenerationHandler(uc),
		Health:     httpH.NewHealthHandler(),
	}
}
