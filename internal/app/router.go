package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/lessongen/internal/config"
	server "github.com/yungbote/lessongen/internal/http"
	httpMW "github.com/yungbote/lessongen/internal/http/middleware"
	"github.com/yungbote/lessongen/internal/platform/logger"
)

func wireRouter(cfg *config.Config, log *logger.Logger, h Handlers) *gin.Engine {
	serviceName := ""
	if cfg.Telemetry.Enabled {
		serviceName = cfg.Telemetry.ServiceName
	}
	return server.NewRouter(server.RouterConfig{
		Log:         log,
		ServiceName: serviceName,
		CORS: httpMW.CORSConfig{
			AllowOrigins:     cfg.CORS.AllowOrigins,
			AllowCredentials: cfg.CORS.AllowCredentials,
		},
		GenerationHandler: h.Generation,
		HealthHandler:     h.Health,
	})
}
