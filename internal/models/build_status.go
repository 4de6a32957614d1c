package models

// BuildStatus is the status CodeBuild reports for a start-build request.
type BuildStatus string

const (
	BuildStatusSucceeded  BuildStatus = "SUCCEEDED"
	BuildStatusInProgress BuildStatus = "IN_PROGRESS"
	BuildStatusFailed     BuildStatus = "FAILED"
	BuildStatusFault      BuildStatus = "FAULT"
	BuildStatusTimedOut   BuildStatus = "TIMED_OUT"
	BuildStatusStopped    BuildStatus = "STOPPED"
)

// Accepted reports whether the status means the build was started.
// Anything other than SUCCEEDED or IN_PROGRESS counts as a rejection.
func (s BuildStatus) Accepted() bool {
	return s == BuildStatusSucceeded || s == BuildStatusInProgress
}
