package env

import (
	"casino_app/internal/config"
	"fmt"
	"os"
)

const (
	smtpHostEnvName = "SMTP_HOST"
	smtpPortEnvName = "SMTP_PORT"
	smtpUserEnvName = "SMTP_USER"
	smtpPassEnvName = "SMTP_PASS"
	smtpFromEnvName = "SMTP_FROM"

	defaultSMTPPort = "587"
)

type smtpConfig struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewSMTPConfig читает настройки почты.
// Отсутствие настроек не ошибка: сервис работает и без почты,
// просто письма не отправляются (Configured() == false)
func NewSMTPConfig() config.SMTPConfig {
	port := os.Getenv(smtpPortEnvName)
	if len(port) == 0 {
		port = defaultSMTPPort
	}

	return &smtpConfig{
		host: os.Getenv(smtpHostEnvName),
		port: port,
		user: os.Getenv(smtpUserEnvName),
		pass: os.Getenv(smtpPassEnvName),
		from: os.Getenv(smtpFromEnvName),
	}
}

func (cfg *smtpConfig) Configured() bool {
	return cfg.host != "" && cfg.user != "" && cfg.pass != "" && cfg.from != ""
}

func (cfg *smtpConfig) Addr() string {
	return fmt.Sprintf("%s:%s", cfg.host, cfg.port)
}

func (cfg *smtpConfig) Host() string {
	return cfg.host
}

func (cfg *smtpConfig) User() string {
	return cfg.user
}

func (cfg *smtpConfig) Pass() string {
	return cfg.pass
}

func (cfg *smtpConfig) From() string {
	return cfg.from
}
