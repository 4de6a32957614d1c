package services

import (
	"fmt"

	"github.com/getmentor/deploy-trigger/internal/models"
)

// ConfigFetchError means the deploy config object could not be read from
// S3. The build is never started in this case.
type ConfigFetchError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *ConfigFetchError) Error() string {
	return fmt.Sprintf("failed to read config file '%s' from bucket '%s': %v", e.Key, e.Bucket, e.Err)
}

func (e *ConfigFetchError) Unwrap() error { return e.Err }

// ConfigParseError means the deploy config object was fetched but is not
// valid YAML.
type ConfigParseError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("config file '%s' from bucket '%s' is not valid YAML: %v", e.Key, e.Bucket, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// BuildRejectedError means CodeBuild answered the start request with a
// status outside the accepted set.
type BuildRejectedError struct {
	Project string
	Status  models.BuildStatus
}

func (e *BuildRejectedError) Error() string {
	return fmt.Sprintf("failed to CodeBuild project '%s', build status returned '%s'", e.Project, e.Status)
}
