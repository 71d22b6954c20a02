package model

// EventKind tells the UI which part of its state an Event updates
type EventKind string

const (
	// EventLog appends Message to the log pane
	EventLog EventKind = "log"

	// EventStatus replaces the status line with Message
	EventStatus EventKind = "status"

	// EventProgress sets the progress bar to Percent
	EventProgress EventKind = "progress"

	// EventFinished is always the last event of a job; Err is nil on success
	EventFinished EventKind = "finished"
)

// Event is a single message from a job worker to the UI loop
type Event struct {
	JobID   string
	Kind    EventKind
	Message string
	Percent int
	Err     error
}

// LogFunc receives human-readable progress lines
type LogFunc func(line string)

// ProgressFunc receives download percentages in [0, 100]
type ProgressFunc func(percent int)
