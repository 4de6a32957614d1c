package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/getmentor/deploy-trigger/config"
	"github.com/getmentor/deploy-trigger/internal/models"
	"github.com/getmentor/deploy-trigger/internal/services"
	"github.com/getmentor/deploy-trigger/pkg/logger"
	"github.com/getmentor/deploy-trigger/pkg/tracing"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ConfigTriggerHandler starts the CodeBuild project the YAML deploy
// config maps the changed object's top-level folder to.
type ConfigTriggerHandler struct {
	service  services.DeployServiceInterface
	cfg      *config.Config
	validate *validator.Validate
}

func NewConfigTriggerHandler(service services.DeployServiceInterface, cfg *config.Config) *ConfigTriggerHandler {
	return &ConfigTriggerHandler{
		service:  service,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// Handle processes one S3 change notification. Every failure path
// produces a structured response; the error returned to the runtime is
// always nil so the platform never retries on our behalf.
func (h *ConfigTriggerHandler) Handle(ctx context.Context, event models.Notification) (events.APIGatewayProxyResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "ConfigTriggerHandler.Handle")
	defer span.End()

	if err := h.validate.Struct(&event); err != nil {
		logger.Warn("Malformed notification", zap.Error(err))
		return respondBadRequest("Notification contained no usable change record."), nil
	}

	objectKey, err := event.FirstObjectKey()
	if err != nil {
		logger.Warn("Malformed object key in notification", zap.Error(err))
		return respondBadRequest("Notification contained no usable change record."), nil
	}

	logger.Info("Processing change notification",
		zap.String("object_key", objectKey),
		zap.String("source_bucket", event.Records[0].S3.Bucket.Name),
	)

	build, err := h.service.StartForObject(ctx, objectKey)
	if err != nil {
		return h.respondError(err), nil
	}

	return respondOK(fmt.Sprintf("Build started and returned status '%s'", build.Status)), nil
}

func (h *ConfigTriggerHandler) respondError(err error) events.APIGatewayProxyResponse {
	var fetchErr *services.ConfigFetchError
	if errors.As(err, &fetchErr) {
		logger.LogError(err, "Failed to read deploy config",
			zap.String("bucket", fetchErr.Bucket),
			zap.String("key", fetchErr.Key),
		)
		return respondInternalError(fmt.Sprintf("Failed to read config file '%s' from bucket '%s'.", fetchErr.Key, fetchErr.Bucket))
	}

	var parseErr *services.ConfigParseError
	if errors.As(err, &parseErr) {
		logger.LogError(err, "Deploy config is not valid YAML",
			zap.String("bucket", parseErr.Bucket),
			zap.String("key", parseErr.Key),
		)
		return respondInternalError(fmt.Sprintf("Config file '%s' in bucket '%s' is not valid YAML.", parseErr.Key, parseErr.Bucket))
	}

	var notMapped *models.ErrFolderNotMapped
	if errors.As(err, &notMapped) {
		logger.Warn("Changed folder has no build project mapping",
			zap.String("folder", notMapped.Segment),
		)
		return respondBadRequest(fmt.Sprintf("No build project mapped for folder '%s'.", notMapped.Segment))
	}

	var rejected *services.BuildRejectedError
	if errors.As(err, &rejected) {
		logger.Error("CodeBuild rejected the start request",
			zap.String("project", rejected.Project),
			zap.String("build_status", string(rejected.Status)),
		)
		return respondInternalError(fmt.Sprintf("Failed to CodeBuild project '%s', build status returned '%s'", rejected.Project, rejected.Status))
	}

	logger.LogError(err, "Failed to start build")
	return respondInternalError(fmt.Sprintf("Failed to start build: %s", err))
}
