package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/cp25sy5-modjot/helpers-service/internal/adapters/grpc"
	"github.com/cp25sy5-modjot/helpers-service/internal/config"
	"github.com/cp25sy5-modjot/helpers-service/internal/pkg/grpcserver"
	"github.com/cp25sy5-modjot/helpers-service/internal/usecase"
	"github.com/cp25sy5-modjot/helpers-service/pkg/helpers"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger = logger.Level(cfg.LogLevel)

	formatter, err := helpers.New(cfg.FormatterOptions()...)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid formatter settings")
	}

	// gRPC server (interface adapter)
	s := grpcserver.New(cfg.Addr, logger)

	// Application service (use cases)
	svc := usecase.NewHelperService(formatter, s, logger)
	grpc.RegisterHelperServer(s.Server, svc)
	s.SetServing(grpc.ServiceName, true)

	// Start
	go func() {
		logger.Info().
			Str("addr", cfg.Addr).
			Str("language", cfg.Language.String()).
			Str("timezone", cfg.Location.String()).
			Str("currency", cfg.Currency.String()).
			Msg("helpers gRPC listening")
		if err := s.Start(); err != nil {
			logger.Fatal().Err(err).Msg("gRPC serve error")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	logger.Info().Msg("shutting down")
	s.Stop()
}
