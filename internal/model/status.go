package model

// JobStatus represents the status of a resolve-and-download job
type JobStatus string

const (
	// JobStatusPending means the job is accepted but its worker has not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusResolving means the input is being turned into a file URL
	JobStatusResolving JobStatus = "Resolving"

	// JobStatusDownloading means the file is streaming to disk
	JobStatusDownloading JobStatus = "Downloading"

	// JobStatusCompleted means the file was saved and the viewer opened
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusFailed means resolution, fetch or write failed
	JobStatusFailed JobStatus = "Failed"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job worker is doing work
func (js JobStatus) IsActive() bool {
	return js == JobStatusResolving || js == JobStatusDownloading
}

// IsFinished returns true if the job reached a terminal state
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusFailed
}
