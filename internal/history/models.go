package history

import "time"

// Status tracks an invocation's lifecycle in the store.
type Status string

const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Invocation is one recorded tool run.
type Invocation struct {
	ID         string
	Tool       string
	InputPath  string
	OutputPath string
	Resolution float64
	Status     Status
	Reason     string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns the wall-clock run time, or zero while still running.
func (i Invocation) Duration() time.Duration {
	if i.FinishedAt.IsZero() {
		return 0
	}
	return i.FinishedAt.Sub(i.StartedAt)
}
