package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchodds/internal/platform/logging"
)

type RouterConfig struct {
	APIKey             string
	CORSAllowedOrigins []string
	// MetricsHandler serves GET /metrics when non-nil.
	MetricsHandler http.Handler
	Recorder       RequestRecorder
}

func NewRouter(handler *Handler, cfg RouterConfig, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.MetricsHandler)
	registerMatchRoutes(mux, handler, cfg.APIKey)
	registerScrapeJobRoutes(mux, handler, cfg.APIKey)
	registerOddsRoutes(mux, handler, cfg.APIKey)

	return RequestTracing(RequestLogging(logger, cfg.Recorder, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "http_path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
