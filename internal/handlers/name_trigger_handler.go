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
	"go.uber.org/zap"
)

// NameTriggerHandler starts a fixed CodeBuild project on every change
// notification, skipping config resolution entirely.
type NameTriggerHandler struct {
	service services.DeployServiceInterface
	cfg     *config.Config
}

func NewNameTriggerHandler(service services.DeployServiceInterface, cfg *config.Config) *NameTriggerHandler {
	return &NameTriggerHandler{
		service: service,
		cfg:     cfg,
	}
}

// Handle starts the configured project. The notification payload is
// only acknowledged, never inspected.
func (h *NameTriggerHandler) Handle(ctx context.Context, event models.Notification) (events.APIGatewayProxyResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "NameTriggerHandler.Handle")
	defer span.End()

	project := h.cfg.CodeBuild.Project

	build, err := h.service.StartProject(ctx, project)
	if err != nil {
		var rejected *services.BuildRejectedError
		if errors.As(err, &rejected) {
			logger.Error("CodeBuild rejected the start request",
				zap.String("project", rejected.Project),
				zap.String("build_status", string(rejected.Status)),
			)
			return respondInternalError(fmt.Sprintf("Failed to CodeBuild project '%s', build status returned '%s'", rejected.Project, rejected.Status)), nil
		}

		logger.LogError(err, "Failed to start build", zap.String("project", project))
		return respondInternalError(fmt.Sprintf("Failed to start build for project '%s'.", project)), nil
	}

	return respondOK(fmt.Sprintf("Build started and returned status '%s'", build.Status)), nil
}
