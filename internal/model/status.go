package model

// RunStatus represents the status of a single fetch-and-persist run
type RunStatus string

const (
	// RunStatusIdle means the run was created but no stage has started
	RunStatusIdle RunStatus = "Idle"

	// RunStatusFetching means the image is being downloaded and decoded
	RunStatusFetching RunStatus = "Fetching"

	// RunStatusPersisting means the decoded image is being written to disk
	RunStatusPersisting RunStatus = "Persisting"

	// RunStatusSucceeded means the image was decoded and stored
	RunStatusSucceeded RunStatus = "Succeeded"

	// RunStatusFailed means either stage failed
	RunStatusFailed RunStatus = "Failed"

	// RunStatusCancelled means the run's context ended before it finished
	RunStatusCancelled RunStatus = "Cancelled"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true if a stage of the run is in progress
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusFetching || rs == RunStatusPersisting
}

// IsFinished returns true if the run reached a terminal state
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusSucceeded || rs == RunStatusFailed || rs == RunStatusCancelled
}
