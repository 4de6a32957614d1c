package services

import (
	"context"

	"github.com/getmentor/deploy-trigger/internal/models"
)

// ObjectFetcherInterface is the storage dependency of the deploy service
type ObjectFetcherInterface interface {
	FetchObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// BuildStarterInterface is the build-service dependency of the deploy service
type BuildStarterInterface interface {
	StartBuild(ctx context.Context, project string) (models.BuildStatus, error)
}

// DeployServiceInterface defines the interface for deploy trigger operations
type DeployServiceInterface interface {
	StartForObject(ctx context.Context, objectKey string) (*TriggeredBuild, error)
	StartProject(ctx context.Context, project string) (*TriggeredBuild, error)
}

// Ensure services implement their interfaces
var _ DeployServiceInterface = (*DeployService)(nil)
