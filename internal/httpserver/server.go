package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Community_Board/internal/config"
)

type Server struct {
	server          *http.Server
	shutDownTimeout time.Duration
	log             *slog.Logger
}

func New(conf config.HTTPServer, handler http.Handler, log *slog.Logger) *Server {
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  conf.ReadTimeout,
		WriteTimeout: conf.WriteTimeout,
		Addr:         conf.Addr(),
	}

	return &Server{
		server:          srv,
		shutDownTimeout: conf.ShutdownTimeout,
		log:             log,
	}
}

// Run 阻塞直到收到 SIGINT/SIGTERM 或 ctx 结束，然后优雅关闭
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("http server listening", "addr", s.server.Addr)

	errCh := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
	}

	s.log.Info("http server shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutDownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
