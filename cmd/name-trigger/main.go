package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/getmentor/deploy-trigger/config"
	"github.com/getmentor/deploy-trigger/internal/handlers"
	"github.com/getmentor/deploy-trigger/internal/services"
	"github.com/getmentor/deploy-trigger/pkg/codebuild"
	"github.com/getmentor/deploy-trigger/pkg/logger"
	"github.com/getmentor/deploy-trigger/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateNameTrigger(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		Environment: cfg.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting name-trigger",
		zap.String("environment", cfg.AppEnv),
		zap.String("project", cfg.CodeBuild.Project),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceVersion,
		cfg.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	buildClient, err := codebuild.NewClient(context.Background(), cfg.AWS)
	if err != nil {
		logger.Fatal("Failed to initialize CodeBuild client", zap.Error(err))
	}

	// The name trigger never reads from S3; the service gets no fetcher.
	service := services.NewDeployService(nil, buildClient, cfg)
	handler := handlers.NewNameTriggerHandler(service, cfg)

	lambda.Start(handler.Handle)
}
