package observability

import (
	"context"
	"net/url"
	"strings"

	"github.com/riskibarqy/matchodds/internal/config"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

// InitUptrace configures global OpenTelemetry providers for Uptrace and, when
// log export is on, mirrors every log record to it.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if reason := uptraceDisabledReason(cfg); reason != "" {
		logging.SetMirror(nil)
		logger.Info("uptrace disabled", "reason", reason)
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(scraperResourceAttributes(cfg)...),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)
	if cfg.UptraceLogsEnabled {
		logging.SetMirror(newUptraceLogMirror(cfg.ServiceVersion))
	} else {
		logging.SetMirror(nil)
	}

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
		"logs_enabled", cfg.UptraceLogsEnabled,
	)

	return func(ctx context.Context) error {
		logging.SetMirror(nil)
		return uptrace.Shutdown(ctx)
	}, nil
}

func uptraceDisabledReason(cfg config.Config) string {
	switch {
	case !cfg.UptraceEnabled:
		return "UPTRACE_ENABLED=false"
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		return "UPTRACE_DSN empty"
	default:
		return ""
	}
}

// scraperResourceAttributes tags every span with the upstream sites and the
// browser setup so traces from differently configured replicas can be told apart.
func scraperResourceAttributes(cfg config.Config) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.Int("matchodds.browser.max_pages", cfg.BrowserMaxPages),
		attribute.Bool("matchodds.browser.headless", cfg.BrowserHeadless),
	}
	if cfg.Location != nil {
		attrs = append(attrs, attribute.String("matchodds.timezone", cfg.Location.String()))
	}
	if host := hostOf(cfg.FlashscoreBaseURL); host != "" {
		attrs = append(attrs, attribute.String("matchodds.source.fixtures", host))
	}
	if host := hostOf(cfg.MozzartOddsURL); host != "" {
		attrs = append(attrs, attribute.String("matchodds.source.odds", host))
	}
	return attrs
}

func hostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return u.Hostname()
}
