package main

import (
	"Whist/config"
	pgconfig "Whist/config/postgres"
	_ "Whist/config/swagger"
	"Whist/controllers"
	"Whist/middleware"
	"Whist/routes"
	"Whist/services/game"
	"Whist/services/redis"
	"Whist/services/socket_io"
	socketio_types "Whist/services/socket_io/types"
	"Whist/sync"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Whist API
// @version 1.0
// @description Gin-Gonic server for multiplayer Whist rooms
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		config.NewLogger(slog.LevelInfo, false).Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.LogLevel, cfg.Prod)
	logger.Info("Setting up server...")

	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		logger.Error("error connecting to Redis", "error", err)
		os.Exit(1)
	}
	defer redis.CloseRedis(redisClient)

	engineOpts := []game.Option{game.WithTypeChangeAfterStart(cfg.AllowMidGameTypeChange)}
	results := &controllers.ResultsController{Logger: logger}

	if cfg.Postgres.Enabled() {
		gormDB, err := pgconfig.ConnectGORM(cfg.Postgres)
		if err != nil {
			logger.Error("error connecting to PostgreSQL", "error", err)
			os.Exit(1)
		}
		// Only migrate in development or during deployment
		if cfg.Postgres.Migrate {
			if err := pgconfig.MigrateDatabase(gormDB); err != nil {
				// Continue execution even if migration fails
				logger.Warn("database migration failed", "error", err)
			}
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			logger.Error("error reading GORM PostgreSQL instance", "error", err)
			os.Exit(1)
		}
		defer sqlDB.Close()

		archive := sync.NewSyncManager(gormDB, logger)
		engineOpts = append(engineOpts, game.WithArchiver(archive))
		results.Archive = archive
	} else {
		logger.Info("POSTGRES_HOST not set, finished games will not be archived")
	}

	engine := game.NewEngine(redisClient, logger, engineOpts...)
	tokens := middleware.NewTokenIssuer(cfg.Secret, cfg.TokenTTL)

	r := gin.Default()
	middleware.SetUpMiddleware(r, cfg.SessionKey, cfg.CorsOrigin, cfg.UseTLS())

	sio := &socket_io.MySocketServer{}
	sio.Start(r, engine, tokens, cfg.CorsOrigin, logger)
	defer sio.Close()

	routes.SetupRoutes(r, routes.Dependencies{
		Store:  redisClient,
		Tokens: tokens,
		Rooms: &controllers.RoomController{
			Engine: engine,
			Tokens: tokens,
			Events: (*socketio_types.SocketServer)(sio),
			Logger: logger,
		},
		Results: results,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", "port", cfg.Port, "tls", cfg.UseTLS())
		var err error
		if cfg.UseTLS() {
			err = srv.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error starting server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
}
