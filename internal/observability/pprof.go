package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/riskibarqy/matchodds/internal/config"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
)

// StartPprofServer serves the runtime profiles on their own listener, outside
// the API key guard.
func StartPprofServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil, nil
	}

	srv := &http.Server{
		Addr:              cfg.PprofAddr,
		Handler:           newPprofMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("pprof server starting", "addr", cfg.PprofAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()

	return srv, nil
}

func newPprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("POST /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	return mux
}

func StopPprofServer(srv *http.Server, logger *logging.Logger, timeout time.Duration) error {
	if srv == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("pprof server stopped")
	return nil
}
