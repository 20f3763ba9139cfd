package job

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether a job in s may move to next.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusRunning
	case StatusRunning:
		return next == StatusCompleted || next == StatusFailed
	default:
		return false
	}
}

type Progress struct {
	Current int
	Total   int
}

// BulkResult summarises a bulk detail scrape. Each error reads "<fixtureID>: <message>".
type BulkResult struct {
	TotalScraped int
	Leagues      []string
	Errors       []string
}

type Job struct {
	ID          string
	Status      Status
	Progress    *Progress
	Result      *BulkResult
	Error       string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// Clone returns a deep copy so callers never share mutable state with a store.
func (j Job) Clone() Job {
	if j.Progress != nil {
		p := *j.Progress
		j.Progress = &p
	}
	if j.Result != nil {
		r := *j.Result
		r.Leagues = append([]string(nil), j.Result.Leagues...)
		r.Errors = append([]string(nil), j.Result.Errors...)
		j.Result = &r
	}
	if j.CompletedAt != nil {
		c := *j.CompletedAt
		j.CompletedAt = &c
	}
	return j
}
