package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kreditwerk/tilgung-service/internal/application/usecase"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
	"github.com/kreditwerk/tilgung-service/internal/infrastructure/config"
	grpcpres "github.com/kreditwerk/tilgung-service/internal/presentation/grpc"
	"github.com/kreditwerk/tilgung-service/internal/presentation/rest"
	"github.com/kreditwerk/tilgung-service/pkg/observability"
)

func main() {
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
	})
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Error("failed to shut down tracer", "error", err)
		}
	}()

	algebra := service.NewLoanAlgebra()
	engine := service.NewAmortizationEngine(algebra)
	analyzer := service.NewSondertilgungAnalyzer(algebra, engine)

	handler := grpcpres.NewTilgungHandler(
		usecase.NewCalculateLoanUseCase(algebra),
		usecase.NewSolveTermUseCase(algebra),
		usecase.NewSolveRateUseCase(algebra),
		usecase.NewGenerateScheduleUseCase(engine),
		usecase.NewAnalyzeImpactUseCase(analyzer),
		usecase.NewCompareStrategiesUseCase(analyzer),
		usecase.NewSensitivityUseCase(analyzer),
		usecase.NewPaymentScenariosUseCase(algebra),
		logger,
	)

	grpcServer := grpcpres.NewServer(handler, logger)
	go func() {
		logger.Info("starting gRPC server", "addr", cfg.GRPCAddr())
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server stopped", "error", err)
			os.Exit(1)
		}
	}()

	mux := http.NewServeMux()
	rest.NewHealthHandler(logger).RegisterRoutes(mux)
	mux.Handle("/metrics", observability.MetricsHandler())

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("starting HTTP server", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
