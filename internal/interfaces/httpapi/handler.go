package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchodds/internal/domain/fixture"
	"github.com/riskibarqy/matchodds/internal/domain/job"
	"github.com/riskibarqy/matchodds/internal/domain/odds"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
	"github.com/riskibarqy/matchodds/internal/usecase"
)

type MatchService interface {
	GetMatchList(ctx context.Context) (fixture.List, bool, error)
	RefreshMatchList(ctx context.Context) (fixture.List, error)
	GetFixtureDetail(ctx context.Context, fixtureID string) (fixture.Detail, bool, error)
}

type ScrapeJobService interface {
	Start(ctx context.Context, forceRefresh bool) (job.Job, error)
	Get(ctx context.Context, jobID string) (job.Job, error)
	List(ctx context.Context) ([]job.Job, error)
}

type OddsService interface {
	Reconcile(ctx context.Context) (odds.ReconcileResult, error)
	List(ctx context.Context) ([]odds.Entry, error)
	Get(ctx context.Context, fixtureID string) (odds.Entry, error)
	Clear(ctx context.Context) (int, error)
}

type Handler struct {
	matches   MatchService
	jobs      ScrapeJobService
	odds      OddsService
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(
	matches MatchService,
	jobs ScrapeJobService,
	oddsService OddsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matches:   matches,
		jobs:      jobs,
		odds:      oddsService,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// validateID checks a path identifier against the fixture and job id alphabet.
func (h *Handler) validateID(ctx context.Context, name, value string) error {
	if err := h.validator.VarCtx(ctx, value, "required,max=64,printascii,excludesall=/?#"); err != nil {
		return fmt.Errorf("%w: %s is invalid", usecase.ErrInvalidInput, name)
	}
	return nil
}
