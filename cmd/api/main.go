package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	appcontext "github.com/SeakMengs/FontCatalog/internal/app_context"
	"github.com/SeakMengs/FontCatalog/internal/catalog"
	"github.com/SeakMengs/FontCatalog/internal/config"
	"github.com/SeakMengs/FontCatalog/internal/env"
	"github.com/SeakMengs/FontCatalog/internal/route"
	"github.com/SeakMengs/FontCatalog/internal/util"
	"github.com/gin-gonic/gin"
)

// reported once the logger exists
var envErr error

// this function run before main
func init() {
	envErr = env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	defer logger.Sync()
	if envErr != nil {
		logger.Warnw("Using process environment only", "error", envErr)
	}
	logger.Debugf("Fonts configuration: %+v \n", cfg.Fonts)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fontCatalog := catalog.New(cfg.Fonts.DIR, cfg.Fonts.PUBLIC_PREFIX, logger)
	if cfg.Fonts.WATCH {
		if err := fontCatalog.Watch(ctx); err != nil {
			logger.Warnw("Font directory watch disabled, rescanning on every request", "error", err)
		}
	}
	defer fontCatalog.Close()

	if err := util.RegisterValidations(); err != nil {
		logger.Panic(err)
	}

	app := appcontext.Application{
		Config:  &cfg,
		Logger:  logger,
		Catalog: fontCatalog,
	}

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    "0.0.0.0:" + app.Config.Port,
		Handler: route.NewRouter(&app),
	}

	go func() {
		logger.Infow("Serving fonts", "addr", srv.Addr, "dir", cfg.Fonts.DIR)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Panicf("Error running server: %v \n", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("Server shutdown failed", "error", err)
	}
}
