package models

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// DeployConfig is the YAML document that routes changed objects to
// CodeBuild projects. The top-level path segment of a changed object key
// selects an entry under Folder:
//
//	Folder:
//	  site: site-build
//	  docs: docs-build
type DeployConfig struct {
	Folder map[string]string `yaml:"Folder"`
}

// ErrFolderNotMapped is returned when an object's top-level segment has
// no entry in the Folder mapping.
type ErrFolderNotMapped struct {
	Segment string
}

func (e *ErrFolderNotMapped) Error() string {
	return fmt.Sprintf("no build project mapped for folder '%s'", e.Segment)
}

// ParseDeployConfig decodes a YAML deploy config document.
func ParseDeployConfig(data []byte) (*DeployConfig, error) {
	var cfg DeployConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse deploy config: %w", err)
	}
	return &cfg, nil
}

// FolderSegment returns the part of an object key up to (not including)
// the first '/'. A key without a separator maps to itself.
func FolderSegment(objectKey string) string {
	segment, _, _ := strings.Cut(objectKey, "/")
	return segment
}

// ProjectForPath resolves the CodeBuild project for a changed object key.
func (c *DeployConfig) ProjectForPath(objectKey string) (string, error) {
	segment := FolderSegment(objectKey)
	project, ok := c.Folder[segment]
	if !ok || project == "" {
		return "", &ErrFolderNotMapped{Segment: segment}
	}
	return project, nil
}
