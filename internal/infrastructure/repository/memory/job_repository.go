package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/matchodds/internal/domain/job"
	"github.com/riskibarqy/matchodds/internal/platform/id"
)

// JobRepository is the process-wide job registry. Every read-modify-write
// runs under one mutex so scrape workers may update the same job concurrently.
type JobRepository struct {
	mu   sync.Mutex
	jobs map[string]*job.Job
	ids  id.Generator
	now  func() time.Time
}

func NewJobRepository(ids id.Generator, now func() time.Time) *JobRepository {
	if ids == nil {
		ids = id.NewPrefixedGenerator("job")
	}
	if now == nil {
		now = time.Now
	}
	return &JobRepository{
		jobs: make(map[string]*job.Job),
		ids:  ids,
		now:  now,
	}
}

func (r *JobRepository) Create(_ context.Context) (job.Job, error) {
	jobID, err := r.ids.NewID()
	if err != nil {
		return job.Job{}, fmt.Errorf("generate job id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item := &job.Job{
		ID:        jobID,
		Status:    job.StatusPending,
		StartedAt: r.now(),
	}
	r.jobs[jobID] = item
	return item.Clone(), nil
}

func (r *JobRepository) UpdateStatus(_ context.Context, jobID string, status job.Status, update job.Update) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.jobs[jobID]
	if !ok {
		return job.Job{}, fmt.Errorf("%w: %s", job.ErrNotFound, jobID)
	}
	if !item.Status.CanTransition(status) {
		return item.Clone(), fmt.Errorf("%w: %s -> %s", job.ErrInvalidTransition, item.Status, status)
	}

	item.Status = status
	if update.Result != nil {
		result := *update.Result
		item.Result = &result
	}
	if update.Error != "" {
		item.Error = update.Error
	}
	if status.Terminal() {
		completedAt := r.now()
		item.CompletedAt = &completedAt
	}
	return item.Clone(), nil
}

// UpdateProgress records progress. Updates to terminal jobs are ignored.
func (r *JobRepository) UpdateProgress(_ context.Context, jobID string, current, total int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.jobs[jobID]
	if !ok {
		return fmt.Errorf("%w: %s", job.ErrNotFound, jobID)
	}
	if item.Status.Terminal() {
		return nil
	}
	if item.Progress != nil && item.Progress.Total == total && current < item.Progress.Current {
		return nil
	}
	item.Progress = &job.Progress{Current: current, Total: total}
	return nil
}

func (r *JobRepository) Get(_ context.Context, jobID string) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.jobs[jobID]
	if !ok {
		return job.Job{}, fmt.Errorf("%w: %s", job.ErrNotFound, jobID)
	}
	return item.Clone(), nil
}

// List returns every job, newest first.
func (r *JobRepository) List(_ context.Context) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]job.Job, 0, len(r.jobs))
	for _, item := range r.jobs {
		out = append(out, item.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out, nil
}

// Cleanup removes terminal jobs that completed more than retention ago.
func (r *JobRepository) Cleanup(_ context.Context, retention time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for jobID, item := range r.jobs {
		if !item.Status.Terminal() || item.CompletedAt == nil {
			continue
		}
		if now.Sub(*item.CompletedAt) > retention {
			delete(r.jobs, jobID)
			removed++
		}
	}
	return removed, nil
}
