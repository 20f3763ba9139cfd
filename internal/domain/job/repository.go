package job

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrNotFound          = crerr.New("job not found")
	ErrInvalidTransition = crerr.New("invalid job status transition")
)

// Update carries the optional fields written alongside a status change.
type Update struct {
	Result *BulkResult
	Error  string
}

type Repository interface {
	Create(ctx context.Context) (Job, error)
	UpdateStatus(ctx context.Context, id string, status Status, update Update) (Job, error)
	UpdateProgress(ctx context.Context, id string, current, total int) error
	Get(ctx context.Context, id string) (Job, error)
	List(ctx context.Context) ([]Job, error)
	Cleanup(ctx context.Context, retention time.Duration) (int, error)
}
