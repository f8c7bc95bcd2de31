package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/lessongen/internal/http/handlers"
	httpMW "github.com/yungbote/lessongen/internal/http/middleware"
	"github.com/yungbote/lessongen/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORS        httpMW.CORSConfig

	GenerationHandler *httpH.GenerationHandler
	HealthHandler     *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORS))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Generation
	if cfg.GenerationHandler != nil {
		r.GET("/generate", cfg.GenerationHandler.LeveledMCQs)
		r.GET("/subtopics", cfg.GenerationHandler.Subtopics)
		r.GET("/content", cfg.GenerationHandler.Content)
		r.GET("/topic-mcqs", cfg.GenerationHandler.TopicMCQs)
	}

	return r
}
