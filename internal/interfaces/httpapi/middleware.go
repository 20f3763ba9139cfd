package httpapi

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
	"github.com/riskibarqy/matchodds/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const apiKeyHeader = "X-API-Key"

// RequestRecorder observes every served request.
type RequestRecorder interface {
	RecordHTTPRequest(ctx context.Context, method, path string, status int, duration time.Duration)
}

// RequireAPIKey rejects requests whose X-API-Key differs from apiKey. An
// empty apiKey disables the check.
func RequireAPIKey(apiKey string, next http.Handler) http.Handler {
	expected := strings.TrimSpace(apiKey)
	if expected == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequireAPIKey")
		defer span.End()

		provided := strings.TrimSpace(r.Header.Get(apiKeyHeader))
		if provided == "" {
			writeError(ctx, w, fmt.Errorf("%w: missing %s header", usecase.ErrUnauthorized, apiKeyHeader))
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			writeError(ctx, w, fmt.Errorf("%w: invalid api key", usecase.ErrUnauthorized))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestLogging(logger *logging.Logger, recorder RequestRecorder, next http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequestLogging")
		defer span.End()

		ctx, route := withRouteCapture(ctx)
		metrics := httpsnoop.CaptureMetrics(next, w, r.WithContext(ctx))

		logger.InfoContext(ctx, "http_request",
			"http_method", r.Method,
			"http_path", r.URL.Path,
			"http_status", metrics.Code,
			"remote_addr", r.RemoteAddr,
			"bytes", metrics.Written,
			"duration_ms", metrics.Duration.Milliseconds(),
		)
		if recorder != nil {
			recorder.RecordHTTPRequest(ctx, r.Method, route.label(), metrics.Code, metrics.Duration)
		}
	})
}

type routeCaptureKey struct{}

// routeCapture carries the matched mux pattern back out to RequestLogging.
// The mux sets Request.Pattern on its own copy of the request, so the
// outer middleware cannot read it directly.
type routeCapture struct {
	pattern string
}

func withRouteCapture(ctx context.Context) (context.Context, *routeCapture) {
	capture := &routeCapture{}
	return context.WithValue(ctx, routeCaptureKey{}, capture), capture
}

// label is the path part of the matched pattern, so ids never become metric labels.
func (c *routeCapture) label() string {
	pattern := strings.TrimSpace(c.pattern)
	if pattern == "" {
		return "unmatched"
	}
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}

// captureRoute records r.Pattern for the enclosing RequestLogging.
func captureRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture, ok := r.Context().Value(routeCaptureKey{}).(*routeCapture); ok {
			capture.pattern = r.Pattern
		}
		next.ServeHTTP(w, r)
	})
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "matchodds-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return shouldTraceRequest(r.URL.Path)
		}),
	)
}

func shouldTraceRequest(path string) bool {
	normalized := strings.ToLower(strings.TrimSpace(path))
	switch normalized {
	case "/healthz", "/health", "/livez", "/readyz", "/metrics":
		return false
	default:
		return true
	}
}

func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowAll := false
	allowMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		candidate := strings.TrimSpace(origin)
		if candidate == "" {
			continue
		}
		if candidate == "*" {
			allowAll = true
			continue
		}
		allowMap[candidate] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.CORS")
		defer span.End()

		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		allowed := allowAll
		if !allowed {
			_, allowed = allowMap[origin]
		}
		if allowed {
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Accept,"+apiKeyHeader)
			w.Header().Set("Access-Control-Max-Age", "600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
