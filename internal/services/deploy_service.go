package services

import (
	"context"

	"github.com/getmentor/deploy-trigger/config"
	"github.com/getmentor/deploy-trigger/internal/models"
	"github.com/getmentor/deploy-trigger/pkg/logger"
	"github.com/getmentor/deploy-trigger/pkg/metrics"
	"github.com/getmentor/deploy-trigger/pkg/tracing"
	"go.uber.org/zap"
)

// TriggeredBuild is the outcome of a successful start request.
type TriggeredBuild struct {
	Project string
	Status  models.BuildStatus
}

// DeployService resolves changed objects to CodeBuild projects and
// starts builds. The deploy config is fetched fresh on every call, never
// cached: config edits must take effect on the next notification.
type DeployService struct {
	fetcher ObjectFetcherInterface
	starter BuildStarterInterface
	cfg     *config.Config
}

func NewDeployService(fetcher ObjectFetcherInterface, starter BuildStarterInterface, cfg *config.Config) *DeployService {
	return &DeployService{
		fetcher: fetcher,
		starter: starter,
		cfg:     cfg,
	}
}

// StartForObject maps the changed object's top-level folder to a
// CodeBuild project via the YAML deploy config and starts that project.
func (s *DeployService) StartForObject(ctx context.Context, objectKey string) (*TriggeredBuild, error) {
	ctx, span := tracing.StartSpan(ctx, "DeployService.StartForObject")
	defer span.End()

	bucket := s.cfg.DeployConfig.Bucket
	key := s.cfg.DeployConfig.Key

	logger.Info("Reading deploy config from S3",
		zap.String("bucket", bucket),
		zap.String("key", key),
	)

	data, err := s.fetcher.FetchObject(ctx, bucket, key)
	if err != nil {
		return nil, &ConfigFetchError{Bucket: bucket, Key: key, Err: err}
	}

	deployCfg, err := models.ParseDeployConfig(data)
	if err != nil {
		return nil, &ConfigParseError{Bucket: bucket, Key: key, Err: err}
	}

	project, err := deployCfg.ProjectForPath(objectKey)
	if err != nil {
		return nil, err
	}

	logger.Info("Resolved build project",
		zap.String("object_key", objectKey),
		zap.String("folder", models.FolderSegment(objectKey)),
		zap.String("project", project),
	)

	return s.StartProject(ctx, project)
}

// StartProject starts a named CodeBuild project and classifies the
// returned status. Only SUCCEEDED and IN_PROGRESS count as accepted.
func (s *DeployService) StartProject(ctx context.Context, project string) (*TriggeredBuild, error) {
	ctx, span := tracing.StartSpan(ctx, "DeployService.StartProject")
	defer span.End()

	logger.Info("Starting CodeBuild project", zap.String("project", project))

	status, err := s.starter.StartBuild(ctx, project)
	if err != nil {
		return nil, err
	}

	metrics.BuildsTriggered.WithLabelValues(project, string(status)).Inc()

	if !status.Accepted() {
		return nil, &BuildRejectedError{Project: project, Status: status}
	}

	return &TriggeredBuild{Project: project, Status: status}, nil
}
