package router

import (
	"slices"
	"time"

	_ "github.com/KianoushAmirpour/medical_image_analyzer/docs"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/adapters/http/handler"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/adapters/http/middleware"
	"github.com/KianoushAmirpour/medical_image_analyzer/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterConfig struct {
	AnalysisHandler      *handler.AnalysisHandler
	GinMode              string
	AllowedOrigins       []string
	MaxRequestBodyBytes  int64
	MultipartMemoryBytes int64
}

func SetupRoutes(config RouterConfig) *gin.Engine {

	gin.SetMode(config.GinMode)
	g := gin.New()
	g.MaxMultipartMemory = config.MultipartMemoryBytes
	g.SetHTMLTemplate(web.Templates())

	g.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	g.Use(
		cors.New(corsConfig(config.AllowedOrigins)),
		middleware.AddRequestIDAndTime(),
		middleware.PanicRecoveryMiddleware(config.AnalysisHandler.Logger),
		middleware.LoggingRequestMiddleware(config.AnalysisHandler.Logger),
	)

	g.StaticFS("/static", web.StaticFS())

	g.Handle("GET", "/", config.AnalysisHandler.HomePageHandler)
	g.Handle("GET", "/health", config.AnalysisHandler.HealthHandler)
	g.Handle("POST", "/analyze", middleware.LimitRequestBody(config.MaxRequestBodyBytes), config.AnalysisHandler.AnalyzeHandler)

	g.NoRoute(config.AnalysisHandler.NotFoundHandler)

	return g

}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowWildcard: true,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
