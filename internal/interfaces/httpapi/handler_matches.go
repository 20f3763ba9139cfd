package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetMatchList(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchList")
	defer span.End()

	list, cached, err := h.matches.GetMatchList(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get match list failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchListToDTO(list, cached))
}

func (h *Handler) RefreshMatchList(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshMatchList")
	defer span.End()

	list, err := h.matches.RefreshMatchList(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh match list failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchListToDTO(list, false))
}

func (h *Handler) GetFixtureDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureDetail")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.validateID(ctx, "match id", matchID); err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, cached, err := h.matches.GetFixtureDetail(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture detail failed", "fixture_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureDetailToDTO(detail, cached))
}
