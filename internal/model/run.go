package model

import "time"

// RunStatus tracks an analysis run through its lifecycle.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run is one persisted analysis: the submitted profile, its lifecycle
// status and, once complete, the generated report.
type Run struct {
	ID        string      `json:"id"`
	Profile   UserProfile `json:"profile"`
	Status    RunStatus   `json:"status"`
	Report    *Report     `json:"report,omitempty"`
	Error     string      `json:"error,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
