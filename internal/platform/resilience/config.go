package resilience

import "time"

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 4,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	}
}

func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return cfg
}

// RetryConfig bounds a scrape: MaxAttempts tries in total, a fixed Delay between
// them, and an optional AttemptTimeout applied to each try separately.
type RetryConfig struct {
	MaxAttempts    int
	Delay          time.Duration
	AttemptTimeout time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    2,
		Delay:          2 * time.Second,
		AttemptTimeout: 30 * time.Second,
	}
}

func NormalizeRetryConfig(cfg RetryConfig) RetryConfig {
	defaults := DefaultRetryConfig()
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if cfg.AttemptTimeout < 0 {
		cfg.AttemptTimeout = 0
	}
	return cfg
}
