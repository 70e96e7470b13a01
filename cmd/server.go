package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usersvc/internal/config"
	"usersvc/internal/core"
	"usersvc/internal/db"
	"usersvc/internal/http/handler"
	"usersvc/internal/http/handler/middleware"
	"usersvc/internal/http/payload"
	"usersvc/internal/http/server"
	"usersvc/internal/repository"
	"usersvc/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "usersvc"

func Start() error {
	bootLogger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		bootLogger.Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger(serviceName, config.LogLevel)
	defer func() { _ = logger.Sync() }()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL, db.PoolConfig{
		MaxOpenConns:    config.DBMaxOpenConns,
		MaxIdleConns:    config.DBMaxIdleConns,
		ConnMaxLifetime: config.DBConnMaxLifetime,
		LogLevel:        config.DBLogLevel,
		Logger:          logger,
	})
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbConn.Ping(pingCtx); err != nil {
		logger.Errorw("database is not reachable", "error", err)
		return err
	}

	opts := server.DefaultOptions()
	opts.ShutdownTimeout = config.ShutdownTimeout

	srv := server.NewHTTP(logger, newHandler(logger, dbConn), config.Addr(), opts)
	return run(srv)
}

// newHandler wires the users API on top of database and wraps it in the request id
// and access log middleware.
func newHandler(logger *zap.SugaredLogger, database repository.Database) http.Handler {
	// repository
	repo := repository.NewUserRepository(database)

	// core
	users := core.NewUserService(logger, repo)

	// handler
	usersHdlr := handler.NewUserHandler(
		logger,
		payload.Decoder{},
		users)

	// register routes
	mux := handler.NewServeMux(usersHdlr)

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	return hdlr
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil && (err == nil || errors.Is(err, http.ErrServerClosed)) {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
