package model

import (
	"fmt"
	"strings"
	"time"
)

// Job represents one user-initiated resolve-and-download action
type Job struct {
	ID         string
	Input      string         // raw text pasted by the user
	Status     JobStatus      // current lifecycle state
	Percent    int            // 0 to 100
	Target     ResolvedTarget // zero until resolution succeeds
	OutputPath string         // destination file path
	Written    int64          // bytes written to OutputPath
	LastError  string         // last error message if any
	StartedAt  time.Time      // when the worker started
	FinishedAt time.Time      // when the job reached a terminal state
}

// GetElapsedString returns the job duration formatted as mm:ss or hh:mm:ss,
// or "—" if the job has not finished
func (j *Job) GetElapsedString() string {
	if j.StartedAt.IsZero() || j.FinishedAt.IsZero() {
		return "—"
	}

	total := int(j.FinishedAt.Sub(j.StartedAt).Seconds())
	if total < 0 {
		return "—"
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayName returns the output filename, the suggested filename, or the
// raw input in order of preference
func (j *Job) GetDisplayName() string {
	if j.OutputPath != "" {
		// support both / and \ separators
		parts := strings.FieldsFunc(j.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}

	if j.Target.Filename != "" {
		return j.Target.Filename
	}

	return strings.TrimSpace(j.Input)
}
