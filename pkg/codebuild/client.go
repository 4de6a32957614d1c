package codebuild

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/codebuild"
	"github.com/getmentor/deploy-trigger/config"
	"github.com/getmentor/deploy-trigger/internal/models"
	"github.com/getmentor/deploy-trigger/pkg/logger"
	"github.com/getmentor/deploy-trigger/pkg/metrics"
	"go.uber.org/zap"
)

// Client wraps the CodeBuild API for starting builds.
type Client struct {
	cbClient *codebuild.Client
}

// NewClient creates a CodeBuild client. With no static credentials
// configured it falls back to the default chain (the Lambda execution role).
func NewClient(ctx context.Context, cfg config.AWSConfig) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	cbClient := codebuild.NewFromConfig(awsCfg, func(o *codebuild.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	logger.Info("CodeBuild client initialized", zap.String("region", cfg.Region))

	return &Client{cbClient: cbClient}, nil
}

// StartBuild issues a single start-build request and returns the status
// CodeBuild reports for the new build. No retries: a rejection is
// surfaced to the caller as-is.
func (c *Client) StartBuild(ctx context.Context, project string) (models.BuildStatus, error) {
	start := time.Now()
	operation := "startBuild"

	out, err := c.cbClient.StartBuild(ctx, &codebuild.StartBuildInput{
		ProjectName: aws.String(project),
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.BuildRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.BuildRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall("codebuild", operation, "error", duration,
			zap.Error(err),
			zap.String("project", project),
		)
		return "", fmt.Errorf("failed to start build for project '%s': %w", project, err)
	}

	if out.Build == nil {
		metrics.BuildRequestTotal.WithLabelValues(operation, "error").Inc()
		return "", fmt.Errorf("start-build response for project '%s' contained no build", project)
	}

	status := models.BuildStatus(out.Build.BuildStatus)

	metrics.BuildRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.BuildRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("codebuild", operation, "success", duration,
		zap.String("project", project),
		zap.String("build_status", string(status)),
	)

	return status, nil
}
