package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/statblock-api/internal/clients/srd"
	"github.com/KirkDiggler/statblock-api/internal/config"
	"github.com/KirkDiggler/statblock-api/internal/handlers/statblock/v1alpha1"
	"github.com/KirkDiggler/statblock-api/internal/orchestrators/statblock"
	"github.com/KirkDiggler/statblock-api/internal/pkg/idgen"
	"github.com/KirkDiggler/statblock-api/internal/platform/otel"
	redisclient "github.com/KirkDiggler/statblock-api/internal/redis"
	parseresults "github.com/KirkDiggler/statblock-api/internal/repositories/parse_results"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort  int
	redisAddr string
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the gRPC server",
	Long:    `Start the statblock gRPC server backed by Redis.`,
	RunE:    runServer,
}

func init() {
	serveCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides STATBLOCK_GRPC_PORT)")
	serveCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address (overrides STATBLOCK_REDIS_ADDR)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(os.Stderr)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := otel.Setup(ctx, cfg.ServiceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	service, err := newService(cfg, logger)
	if err != nil {
		return err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{StatBlockService: service})
	if err != nil {
		return fmt.Errorf("failed to create stat block handler: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterStatBlockServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", "port", cfg.GRPCPort, "store", cfg.Store, "srd", cfg.SRDBaseURL != "")
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(shutdownTimeout):
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}

// newService wires the orchestrator and its storage
func newService(cfg *config.Config, logger *slog.Logger) (statblock.Service, error) {
	repo, err := newRepository(cfg)
	if err != nil {
		return nil, err
	}

	parser, err := newParser(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	var srdClient srd.Client
	if cfg.SRDBaseURL != "" {
		srdClient, err = srd.New(&srd.Config{BaseURL: cfg.SRDBaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to create srd client: %w", err)
		}
	}

	return statblock.NewOrchestrator(&statblock.Config{
		Repository:  repo,
		Parser:      parser,
		IDGenerator: idgen.NewUUID("sb"),
		SRDClient:   srdClient,
		Logger:      logger,
	})
}

func newRepository(cfg *config.Config) (parseresults.Repository, error) {
	if cfg.Store == config.StoreMemory {
		return parseresults.NewInMemory(nil), nil
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := parseresults.NewRedisRepository(&parseresults.Config{
		Client: client,
		TTL:    cfg.ResultTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create parse result repository: %w", err)
	}
	return repo, nil
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	logOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.StartCall, grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			logger.ErrorContext(ctx, "panic in grpc handler", "panic", p)
			return status.Error(codes.Internal, "internal error")
		}),
	}

	return grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)
}

// interceptorLogger adapts slog to the middleware logger; the level values
// line up with slog's
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
