package env

import (
	"casino_app/internal/config"
	"fmt"
	"os"
	"time"
)

const (
	sessionTTLEnvName   = "SESSION_TTL"
	sessionSweepEnvName = "SESSION_SWEEP_INTERVAL"

	defaultSessionTTL    = 24 * time.Hour
	defaultSweepInterval = time.Hour
)

type sessionConfig struct {
	ttl           time.Duration
	sweepInterval time.Duration
}

func NewSessionConfig() (config.SessionConfig, error) {
	cfg := &sessionConfig{
		ttl:           defaultSessionTTL,
		sweepInterval: defaultSweepInterval,
	}

	if raw := os.Getenv(sessionTTLEnvName); len(raw) > 0 {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session ttl: %w", err)
		}
		cfg.ttl = ttl
	}

	if raw := os.Getenv(sessionSweepEnvName); len(raw) > 0 {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session sweep interval: %w", err)
		}
		cfg.sweepInterval = interval
	}

	return cfg, nil
}

func (cfg *sessionConfig) SessionTTL() time.Duration {
	return cfg.ttl
}

func (cfg *sessionConfig) SweepInterval() time.Duration {
	return cfg.sweepInterval
}
