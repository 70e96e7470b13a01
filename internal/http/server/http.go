package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Options struct {
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

func DefaultOptions() Options {
	return Options{
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

type HTTPServer struct {
	logs            *zap.SugaredLogger
	srv             *http.Server
	shutdownTimeout time.Duration
}

func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, addr string, opts Options) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: opts.ReadHeaderTimeout,
			ReadTimeout:       opts.ReadTimeout,
			WriteTimeout:      opts.WriteTimeout,
			IdleTimeout:       opts.IdleTimeout,
			ErrorLog:          zap.NewStdLog(logger.Desugar()),
		},
		shutdownTimeout: opts.ShutdownTimeout,
	}
}

// Run binds the listen socket and serves in the background. The returned channel
// receives exactly one error: the bind failure or whatever ends Serve, which is
// http.ErrServerClosed after Shutdown.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		errChan <- fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
		return errChan
	}

	s.logs.Infow("http server listening", "addr", ln.Addr().String())

	go func() {
		errChan <- s.srv.Serve(ln)
	}()

	return errChan
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logs.Infow("http server shutting down", "timeout", s.shutdownTimeout)

	if err := s.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
