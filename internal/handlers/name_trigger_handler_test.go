package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/getmentor/deploy-trigger/config"
	"github.com/getmentor/deploy-trigger/internal/handlers"
	"github.com/getmentor/deploy-trigger/internal/models"
	"github.com/getmentor/deploy-trigger/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNameTriggerHandler(starter *MockBuildStarter, project string) *handlers.NameTriggerHandler {
	cfg := &config.Config{
		CodeBuild: config.CodeBuildConfig{Project: project},
	}
	service := services.NewDeployService(nil, starter, cfg)
	return handlers.NewNameTriggerHandler(service, cfg)
}

func TestNameTriggerHandler_BuildStarted(t *testing.T) {
	mockStarter := new(MockBuildStarter)
	handler := newNameTriggerHandler(mockStarter, "demo")

	mockStarter.On("StartBuild", mock.Anything, "demo").
		Return(models.BuildStatusSucceeded, nil).Once()

	resp, err := handler.Handle(context.Background(), notification("anything.txt"))
	require.NoError(t, err)

	assert.False(t, resp.IsBase64Encoded)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `"Build started and returned status 'SUCCEEDED'"`, resp.Body)

	mockStarter.AssertExpectations(t)
}

func TestNameTriggerHandler_BuildRejected(t *testing.T) {
	mockStarter := new(MockBuildStarter)
	handler := newNameTriggerHandler(mockStarter, "demo")

	mockStarter.On("StartBuild", mock.Anything, "demo").
		Return(models.BuildStatusTimedOut, nil).Once()

	resp, err := handler.Handle(context.Background(), notification("anything.txt"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, `"Failed to CodeBuild project 'demo', build status returned 'TIMED_OUT'"`, resp.Body)
}

func TestNameTriggerHandler_StartError(t *testing.T) {
	mockStarter := new(MockBuildStarter)
	handler := newNameTriggerHandler(mockStarter, "demo")

	mockStarter.On("StartBuild", mock.Anything, "demo").
		Return(models.BuildStatus(""), errors.New("throttled")).Once()

	resp, err := handler.Handle(context.Background(), notification("anything.txt"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, `"Failed to start build for project 'demo'."`, resp.Body)
}
