package services_test

import (
	"context"

	"github.com/getmentor/deploy-trigger/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockObjectFetcher is a mock implementation of ObjectFetcherInterface
type MockObjectFetcher struct {
	mock.Mock
}

func (m *MockObjectFetcher) FetchObject(ctx context.Context, bucket, key string) ([]byte, error) {
	args := m.Called(ctx, bucket, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockBuildStarter is a mock implementation of BuildStarterInterface
type MockBuildStarter struct {
	mock.Mock
}

func (m *MockBuildStarter) StartBuild(ctx context.Context, project string) (models.BuildStatus, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(models.BuildStatus), args.Error(1)
}
