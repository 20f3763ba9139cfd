package observability

import (
	"runtime"
	"strconv"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/matchodds/internal/config"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
)

// mutexProfileRate samples one in this many contended lock events.
const mutexProfileRate = 5

// InitPyroscope starts continuous profiling when enabled.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	previousRate := runtime.SetMutexProfileFraction(mutexProfileRate)
	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags:              profileTags(cfg),
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexCount,
			pyroscope.ProfileMutexDuration,
		},
	})
	if err != nil {
		runtime.SetMutexProfileFraction(previousRate)
		return nil, err
	}

	logger.Info("pyroscope enabled",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
	)

	return func() error {
		defer runtime.SetMutexProfileFraction(previousRate)
		return profiler.Stop()
	}, nil
}

func profileTags(cfg config.Config) map[string]string {
	tags := map[string]string{
		"env":               cfg.AppEnv,
		"service":           cfg.ServiceName,
		"browser_max_pages": strconv.Itoa(cfg.BrowserMaxPages),
		"scrape_workers":    strconv.Itoa(cfg.ScrapeConcurrency),
	}
	if cfg.Location != nil {
		tags["timezone"] = cfg.Location.String()
	}
	return tags
}
