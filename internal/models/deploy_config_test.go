package models_test

import (
	"testing"

	"github.com/getmentor/deploy-trigger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeployConfig(t *testing.T) {
	cfg, err := models.ParseDeployConfig([]byte(`
Folder:
  site: site-build
  docs: docs-build
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"site": "site-build",
		"docs": "docs-build",
	}, cfg.Folder)
}

func TestParseDeployConfig_InvalidYAML(t *testing.T) {
	_, err := models.ParseDeployConfig([]byte("Folder: [broken"))
	assert.Error(t, err)
}

func TestFolderSegment(t *testing.T) {
	tests := []struct {
		name      string
		objectKey string
		want      string
	}{
		{
			name:      "nested path",
			objectKey: "site/index.html",
			want:      "site",
		},
		{
			name:      "deeply nested path",
			objectKey: "site/posts/2024/hello.md",
			want:      "site",
		},
		{
			name:      "no separator maps to whole key",
			objectKey: "README.md",
			want:      "README.md",
		},
		{
			name:      "trailing separator",
			objectKey: "site/",
			want:      "site",
		},
		{
			name:      "leading separator gives empty segment",
			objectKey: "/site/index.html",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.FolderSegment(tt.objectKey))
		})
	}
}

func TestDeployConfig_ProjectForPath(t *testing.T) {
	cfg := &models.DeployConfig{
		Folder: map[string]string{
			"site": "site-build",
		},
	}

	project, err := cfg.ProjectForPath("site/index.html")
	require.NoError(t, err)
	assert.Equal(t, "site-build", project)

	_, err = cfg.ProjectForPath("infra/main.tf")
	var notMapped *models.ErrFolderNotMapped
	require.ErrorAs(t, err, &notMapped)
	assert.Equal(t, "infra", notMapped.Segment)
}

func TestDeployConfig_ProjectForPath_EmptyMapping(t *testing.T) {
	cfg := &models.DeployConfig{}

	_, err := cfg.ProjectForPath("site/index.html")
	assert.Error(t, err)
}

func TestBuildStatus_Accepted(t *testing.T) {
	assert.True(t, models.BuildStatusSucceeded.Accepted())
	assert.True(t, models.BuildStatusInProgress.Accepted())
	assert.False(t, models.BuildStatusFailed.Accepted())
	assert.False(t, models.BuildStatusFault.Accepted())
	assert.False(t, models.BuildStatusTimedOut.Accepted())
	assert.False(t, models.BuildStatusStopped.Accepted())
	assert.False(t, models.BuildStatus("SOMETHING_ELSE").Accepted())
}
