package model

import "time"

// Fetch sources recorded in the run history.
const (
	SourceNetwork  = "network"
	SourceFallback = "fallback"
)

// FetchRun records one execution of the acquisition pipeline. It lives in
// the history index only; the canonical table carries no run metadata.
type FetchRun struct {
	RunID        string    `json:"runId"`
	StartedAt    time.Time `json:"startedAt"`
	EndedAt      time.Time `json:"endedAt"`
	Source       string    `json:"source"` // network or fallback
	SourceURL    string    `json:"sourceUrl,omitempty"`
	ControlCount int       `json:"controlCount"`
}

// NewFetchRun starts run metadata for the current process.
func NewFetchRun(started time.Time) FetchRun {
	return FetchRun{
		RunID:     NewRunID(),
		StartedAt: started,
		Source:    SourceFallback,
	}
}
