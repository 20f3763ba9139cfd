package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/riskibarqy/matchodds/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	APIKey             string
	CORSAllowedOrigins []string
	Location           *time.Location
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level

	FlashscoreBaseURL string
	MozzartOddsURL    string

	ScrapeTimeout     time.Duration
	ScrapeMaxAttempts int
	ScrapeRetryDelay  time.Duration
	ScrapeConcurrency int

	BrowserMaxPages int
	BrowserHeadless bool
	BrowserExecPath string

	ListCacheMaxAge time.Duration
	JobRetention    time.Duration

	ScraperCircuitEnabled        bool
	ScraperCircuitFailureCount   int
	ScraperCircuitOpenTimeout    time.Duration
	ScraperCircuitHalfOpenMaxReq int

	MetricsEnabled      bool
	MetricsOTLPEndpoint string
	MetricsOTLPInsecure bool

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	PprofEnabled bool
	PprofAddr    string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Europe/Belgrade"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TIMEZONE: %w", err)
	}

	readTimeout, err := getEnvAsPositiveDuration("HTTP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsPositiveDuration("HTTP_WRITE_TIMEOUT", "60s")
	if err != nil {
		return Config{}, err
	}

	scrapeTimeout, err := getEnvAsPositiveDuration("SCRAPE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	scrapeMaxAttempts, err := getEnvAsInt("SCRAPE_MAX_ATTEMPTS", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_MAX_ATTEMPTS: %w", err)
	}
	if scrapeMaxAttempts < 1 {
		return Config{}, fmt.Errorf("SCRAPE_MAX_ATTEMPTS must be >= 1")
	}
	scrapeRetryDelay, err := time.ParseDuration(getEnv("SCRAPE_RETRY_DELAY", "2s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_RETRY_DELAY: %w", err)
	}
	if scrapeRetryDelay < 0 {
		return Config{}, fmt.Errorf("SCRAPE_RETRY_DELAY must be >= 0")
	}
	scrapeConcurrency, err := getEnvAsInt("SCRAPE_CONCURRENCY", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_CONCURRENCY: %w", err)
	}
	if scrapeConcurrency < 1 {
		return Config{}, fmt.Errorf("SCRAPE_CONCURRENCY must be >= 1")
	}

	browserMaxPages, err := getEnvAsInt("BROWSER_MAX_PAGES", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse BROWSER_MAX_PAGES: %w", err)
	}
	if browserMaxPages < 1 {
		return Config{}, fmt.Errorf("BROWSER_MAX_PAGES must be >= 1")
	}
	browserHeadless, err := strconv.ParseBool(getEnv("BROWSER_HEADLESS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BROWSER_HEADLESS: %w", err)
	}

	listCacheMaxAge, err := getEnvAsPositiveDuration("LIST_CACHE_MAX_AGE", "30m")
	if err != nil {
		return Config{}, err
	}
	jobRetention, err := getEnvAsPositiveDuration("JOB_RETENTION", "1h")
	if err != nil {
		return Config{}, err
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("SCRAPER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("SCRAPER_CIRCUIT_FAILURE_COUNT", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SCRAPER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := getEnvAsPositiveDuration("SCRAPER_CIRCUIT_OPEN_TIMEOUT", "1m")
	if err != nil {
		return Config{}, err
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}
	metricsOTLPInsecure, err := strconv.ParseBool(getEnv("METRICS_OTLP_INSECURE", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_OTLP_INSECURE: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  getEnv("APP_SERVICE_NAME", "matchodds-api"),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("HTTP_ADDR", ":3001"),
		APIKey:                       strings.TrimSpace(getEnv("API_KEY", "")),
		CORSAllowedOrigins:           splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		Location:                     loc,
		ReadTimeout:                  readTimeout,
		WriteTimeout:                 writeTimeout,
		LogLevel:                     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		FlashscoreBaseURL:            strings.TrimSpace(getEnv("FLASHSCORE_BASE_URL", "https://www.flashscore.com")),
		MozzartOddsURL:               strings.TrimSpace(getEnv("MOZZART_ODDS_URL", "https://www.mozzartbet.com/sr/kladjenje/sport/1?date=today")),
		ScrapeTimeout:                scrapeTimeout,
		ScrapeMaxAttempts:            scrapeMaxAttempts,
		ScrapeRetryDelay:             scrapeRetryDelay,
		ScrapeConcurrency:            scrapeConcurrency,
		BrowserMaxPages:              browserMaxPages,
		BrowserHeadless:              browserHeadless,
		BrowserExecPath:              strings.TrimSpace(getEnv("BROWSER_EXEC_PATH", "")),
		ListCacheMaxAge:              listCacheMaxAge,
		JobRetention:                 jobRetention,
		ScraperCircuitEnabled:        circuitEnabled,
		ScraperCircuitFailureCount:   circuitFailureCount,
		ScraperCircuitOpenTimeout:    circuitOpenTimeout,
		ScraperCircuitHalfOpenMaxReq: circuitHalfOpenMaxReq,
		MetricsEnabled:               metricsEnabled,
		MetricsOTLPEndpoint:          strings.TrimSpace(getEnv("METRICS_OTLP_ENDPOINT", "")),
		MetricsOTLPInsecure:          metricsOTLPInsecure,
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		UptraceLogsEnabled:           uptraceLogsEnabled,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       pyroscopeServerAddress,
		PyroscopeAuthToken:           strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:       strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:   strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:          pyroscopeUploadRate,
		PprofEnabled:                 pprofEnabled,
		PprofAddr:                    pprofAddr,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.FlashscoreBaseURL == "" {
		return Config{}, fmt.Errorf("FLASHSCORE_BASE_URL cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return d, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
