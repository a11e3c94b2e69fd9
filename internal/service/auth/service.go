package auth

import (
	"casino_app/internal/config"
	"casino_app/internal/mailer"
	"casino_app/internal/repository"
	"casino_app/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager   trm.Manager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtCfg      config.JWTConfig
	sessionCfg  config.SessionConfig
	appCfg      config.AppConfig
	mail        mailer.Mailer
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtCfg config.JWTConfig,
	sessionCfg config.SessionConfig,
	appCfg config.AppConfig,
	mail mailer.Mailer,
) service.AuthService {
	return &serv{
		txManager:   txManager,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtCfg:      jwtCfg,
		sessionCfg:  sessionCfg,
		appCfg:      appCfg,
		mail:        mail,
	}
}
