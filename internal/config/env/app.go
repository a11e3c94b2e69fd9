package env

import (
	"casino_app/internal/config"
	"os"
	"strings"
)

const (
	appURLEnvName = "APP_URL"

	defaultAppURL = "http://localhost:8080"
)

type appConfig struct {
	baseURL string
}

// NewAppConfig - базовый URL приложения для ссылок в письмах
func NewAppConfig() config.AppConfig {
	baseURL := os.Getenv(appURLEnvName)
	if len(baseURL) == 0 {
		baseURL = defaultAppURL
	}

	return &appConfig{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (cfg *appConfig) BaseURL() string {
	return cfg.baseURL
}
