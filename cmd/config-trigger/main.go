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
	"github.com/getmentor/deploy-trigger/pkg/storage"
	"github.com/getmentor/deploy-trigger/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateConfigTrigger(); err != nil {
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

	logger.Info("Starting config-trigger",
		zap.String("environment", cfg.AppEnv),
		zap.String("config_bucket", cfg.DeployConfig.Bucket),
		zap.String("config_key", cfg.DeployConfig.Key),
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

	// AWS clients share the cold-start context
	ctx := context.Background()

	storageClient, err := storage.NewClient(ctx, cfg.AWS)
	if err != nil {
		logger.Fatal("Failed to initialize S3 client", zap.Error(err))
	}

	buildClient, err := codebuild.NewClient(ctx, cfg.AWS)
	if err != nil {
		logger.Fatal("Failed to initialize CodeBuild client", zap.Error(err))
	}

	service := services.NewDeployService(storageClient, buildClient, cfg)
	handler := handlers.NewConfigTriggerHandler(service, cfg)

	lambda.Start(handler.Handle)
}
