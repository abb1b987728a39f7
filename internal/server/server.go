package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/handler"
	"github.com/MKhiriev/guest-nama/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx, s.httpServer.RunServer); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run starts serve in the background and shuts the server down once ctx is
// done. It returns after shutdown completed.
func (s *server) run(ctx context.Context, serve func()) error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	served := make(chan struct{})
	go func() {
		defer close(served)
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		serve()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-served
	case <-served:
		// the listener failed on its own
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
