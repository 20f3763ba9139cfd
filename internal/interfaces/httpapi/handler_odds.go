package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ReconcileOdds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReconcileOdds")
	defer span.End()

	result, err := h.odds.Reconcile(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "reconcile odds failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reconcileToDTO(result))
}

func (h *Handler) ListOdds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOdds")
	defer span.End()

	items, err := h.odds.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := oddsEntriesToDTO(items)
	writeSuccess(ctx, w, http.StatusOK, oddsListDTO{Count: len(out), Odds: out})
}

func (h *Handler) GetOdds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOdds")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.validateID(ctx, "match id", matchID); err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.odds.Get(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, oddsEntryToDTO(entry))
}

func (h *Handler) ClearOdds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearOdds")
	defer span.End()

	removed, err := h.odds.Clear(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clearOddsDTO{Removed: removed})
}
