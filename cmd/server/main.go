package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/api"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/apiclient"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/config"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/credentials"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/provider"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	creds, err := credentials.NewFileStore(cfg.CredentialsFile, logger)
	if err != nil {
		logger.Fatalf("failed to open credential store: %v", err)
	}

	client := apiclient.New(cfg.APIBaseURL, creds, logger,
		apiclient.WithAuthExpiredHook(func() {
			logger.Warn("session expired, login required")
		}),
	)

	registry := service.NewRegistry(
		provider.NewMockSet(cfg),
		provider.NewHTTPSet(client),
		creds,
		cfg.UseMockData,
		logger,
	)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := api.NewApp(logger, registry, creds)
	r := api.NewRouter(app)

	logger.Infof("listening on %s (mock=%t)", cfg.ListenAddr, cfg.UseMockData)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
