package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	router "github.com/KianoushAmirpour/medical_image_analyzer/internal/adapters/http"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/adapters/http/handler"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/infrastructure/ai"
	config "github.com/KianoushAmirpour/medical_image_analyzer/internal/infrastructure/configs"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/usecase"
	"github.com/KianoushAmirpour/medical_image_analyzer/pkg/logger"
)

type App struct {
	Cfg *config.Config
}

func (a App) Run() {

	rootctx, rootcancel := context.WithCancel(context.Background())
	defer rootcancel()

	logger := logger.NewLogger(a.Cfg.LogFile)

	geminiClient, err := ai.NewGeminiClient(rootctx, a.Cfg.GeminiAPI, a.Cfg.GeminiModel, a.Cfg.GeminiBaseURL)
	if err != nil {
		logger.Error("failed to create gemini client", "reason", err.Error())
		panic(err)
	}

	analysisSvc := usecase.NewAnalysisService(geminiClient, logger)

	h := handler.NewAnalysisHandler(analysisSvc, logger)

	routerCfg := router.RouterConfig{
		AnalysisHandler:      h,
		GinMode:              a.Cfg.GinMode,
		AllowedOrigins:       a.Cfg.CorsAllowedOrigins,
		MaxRequestBodyBytes:  a.Cfg.MaxRequestBodyBytes,
		MultipartMemoryBytes: a.Cfg.MultipartMemoryBytes,
	}

	g := router.SetupRoutes(routerCfg)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", a.Cfg.ServerHost, a.Cfg.ServerPort),
		Handler: g,
	}

	go func() {
		logger.Info("starting the server", "addr", server.Addr, "model", a.Cfg.GeminiModel)
		serverErr := server.ListenAndServe()
		if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
			logger.Error("failed to start the server", "reason", serverErr.Error())
			rootcancel()
		}
	}()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigchan:
		logger.Info("shutdown signal received", "signal", sig.String())
	case <-rootctx.Done():
	}

	shutdownctx, shutdowncancelFunc := context.WithTimeout(context.Background(), time.Duration(a.Cfg.ServerShutdownTimeout)*time.Second)
	defer shutdowncancelFunc()
	if err := server.Shutdown(shutdownctx); err != nil {
		logger.Error("server closed with error", "reason", err.Error())
	}

	logger.Info("server exited")

}
