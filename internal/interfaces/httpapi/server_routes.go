package httpapi

import "net/http"

func handle(mux *http.ServeMux, pattern string, h http.Handler) {
	mux.Handle(pattern, captureRoute(h))
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	handle(mux, "GET /healthz", http.HandlerFunc(handler.Healthz))
	if metrics == nil {
		return
	}
	handle(mux, "GET /metrics", metrics)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler, apiKey string) {
	handle(mux, "GET /v1/matches", RequireAPIKey(apiKey, http.HandlerFunc(handler.GetMatchList)))
	handle(mux, "GET /v1/matches/refresh", RequireAPIKey(apiKey, http.HandlerFunc(handler.RefreshMatchList)))
	handle(mux, "GET /v1/matches/{matchID}", RequireAPIKey(apiKey, http.HandlerFunc(handler.GetFixtureDetail)))
}

func registerScrapeJobRoutes(mux *http.ServeMux, handler *Handler, apiKey string) {
	handle(mux, "POST /v1/scrape/jobs", RequireAPIKey(apiKey, http.HandlerFunc(handler.StartScrapeJob)))
	handle(mux, "GET /v1/scrape/jobs", RequireAPIKey(apiKey, http.HandlerFunc(handler.ListScrapeJobs)))
	handle(mux, "GET /v1/scrape/jobs/{jobID}", RequireAPIKey(apiKey, http.HandlerFunc(handler.GetScrapeJob)))
}

func registerOddsRoutes(mux *http.ServeMux, handler *Handler, apiKey string) {
	handle(mux, "POST /v1/odds/reconcile", RequireAPIKey(apiKey, http.HandlerFunc(handler.ReconcileOdds)))
	handle(mux, "GET /v1/odds", RequireAPIKey(apiKey, http.HandlerFunc(handler.ListOdds)))
	handle(mux, "GET /v1/odds/{matchID}", RequireAPIKey(apiKey, http.HandlerFunc(handler.GetOdds)))
	handle(mux, "DELETE /v1/odds", RequireAPIKey(apiKey, http.HandlerFunc(handler.ClearOdds)))
}
