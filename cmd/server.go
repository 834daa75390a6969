package cmd

import (
	"context"
	"errors"
	"feedbacker/internal/config"
	"feedbacker/internal/core"
	"feedbacker/internal/db"
	"feedbacker/internal/http/handler"
	"feedbacker/internal/http/handler/middleware"
	"feedbacker/internal/http/server"
	"feedbacker/internal/repository"
	"feedbacker/pkg/log"
	"feedbacker/pkg/session"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		log.NewZapLogger("feedbacker", zapcore.InfoLevel).Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("feedbacker", log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	dbConn, err := db.NewGormDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = dbConn.Ping(ctx)
	cancel()
	if err != nil {
		logger.Errorw("database is unreachable", "error", err)
		return err
	}

	// repository
	repo := repository.NewBoardRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// sessions
	var registry session.Registry
	if config.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := session.NewRedisClient(ctx, config.RedisURL)
		cancel()
		if err != nil {
			logger.Errorw("failed to connect to redis", "error", err)
			return err
		}
		defer redisClient.Close()

		registry = session.NewRedisRegistry(redisClient)
		logger.Infow("session registry enabled")
	}
	sessions := session.NewManager([]byte(config.SessionSecret), config.SessionTTL, config.SecureCookies, registry)

	// board
	board := core.NewBoard(logger, repo)

	// handler
	boardHlr, err := handler.NewBoardHandler(logger, board, sessions)
	if err != nil {
		logger.Errorw("failed to create board handler", "error", err)
		return err
	}

	mux := http.NewServeMux()
	boardHlr.RegisterRoutes(mux)

	// middleware, outermost last
	hdlr := middleware.NewCSRFMiddleware(logger).CSRF(mux)
	hdlr = middleware.NewSessionMiddleware(logger, sessions).Session(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
