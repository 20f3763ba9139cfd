package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/matchodds/internal/usecase"
)

const maxJobRequestBytes = 4 << 10

// StartScrapeJob accepts an optional {"forceRefresh": bool} body and answers
// 202 with the pending job.
func (h *Handler) StartScrapeJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartScrapeJob")
	defer span.End()

	var req startScrapeJobRequest
	decoder := jsoniter.NewDecoder(io.LimitReader(r.Body, maxJobRequestBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.jobs.Start(ctx, req.ForceRefresh)
	if err != nil {
		h.logger.WarnContext(ctx, "start scrape job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, jobToDTO(item))
}

func (h *Handler) GetScrapeJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScrapeJob")
	defer span.End()

	jobID := strings.TrimSpace(r.PathValue("jobID"))
	if err := h.validateID(ctx, "job id", jobID); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.jobs.Get(ctx, jobID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, jobToDTO(item))
}

func (h *Handler) ListScrapeJobs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScrapeJobs")
	defer span.End()

	items, err := h.jobs.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list scrape jobs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]jobDTO, 0, len(items))
	for _, item := range items {
		out = append(out, jobToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, jobListDTO{Total: len(out), Jobs: out})
}
