package app

import (
	adminAPI "casino_app/internal/api/admin"
	authAPI "casino_app/internal/api/auth"
	gameAPI "casino_app/internal/api/game"
	userAPI "casino_app/internal/api/user"
	"casino_app/internal/config"
	"casino_app/internal/config/env"
	"casino_app/internal/mailer"
	"casino_app/internal/middleware"
	"casino_app/internal/repository"
	"casino_app/internal/repository/history_repo"
	"casino_app/internal/repository/session_repo"
	"casino_app/internal/repository/settings_repo"
	"casino_app/internal/repository/user_repo"
	"casino_app/internal/service"
	adminServ "casino_app/internal/service/admin"
	authServ "casino_app/internal/service/auth"
	gameServ "casino_app/internal/service/game"
	userServ "casino_app/internal/service/user"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Repositories
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	historyRepo  repository.HistoryRepository
	settingsRepo repository.SettingsRepository

	// Configs
	jwtCfg     config.JWTConfig
	sessionCfg config.SessionConfig
	smtpCfg    config.SMTPConfig
	appCfg     config.AppConfig
	gamesCfg   []config.GameConfig

	// Mail
	mail mailer.Mailer

	// Services
	authServ  service.AuthService
	gameServ  service.GameService
	userServ  service.UserService
	adminServ service.AdminService

	// Handlers and middleware
	authMW    *middleware.Auth
	authHand  *authAPI.Handler
	gameHand  *gameAPI.Handler
	userHand  *userAPI.Handler
	adminHand *adminAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) SessionRepo(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx))
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) HistoryRepo(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository(sp.DBClient(ctx))
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) SettingsRepo(ctx context.Context) repository.SettingsRepository {
	if sp.settingsRepo == nil {
		sp.settingsRepo = settings_repo.NewSettingsRepository(sp.DBClient(ctx))
	}
	return sp.settingsRepo
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) SMTPCfg() config.SMTPConfig {
	if sp.smtpCfg == nil {
		sp.smtpCfg = env.NewSMTPConfig()
	}
	return sp.smtpCfg
}

func (sp *ServiceProvider) AppCfg() config.AppConfig {
	if sp.appCfg == nil {
		sp.appCfg = env.NewAppConfig()
	}
	return sp.appCfg
}

func (sp *ServiceProvider) GamesCfg() []config.GameConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) Mailer() mailer.Mailer {
	if sp.mail == nil {
		sp.mail = mailer.NewSMTPMailer(sp.SMTPCfg())
	}
	return sp.mail
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authServ.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.SessionRepo(ctx),
			sp.JWTCfg(),
			sp.SessionCfg(),
			sp.AppCfg(),
			sp.Mailer(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = gameServ.NewGameService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.HistoryRepo(ctx),
			sp.SettingsRepo(ctx),
			nil,
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) UserService(ctx context.Context) service.UserService {
	if sp.userServ == nil {
		sp.userServ = userServ.NewService(sp.UserRepo(ctx))
	}
	return sp.userServ
}

func (sp *ServiceProvider) AdminService(ctx context.Context) service.AdminService {
	if sp.adminServ == nil {
		sp.adminServ = adminServ.NewService(sp.UserRepo(ctx), sp.SettingsRepo(ctx))
	}
	return sp.adminServ
}

func (sp *ServiceProvider) AuthMiddleware(ctx context.Context) *middleware.Auth {
	if sp.authMW == nil {
		sp.authMW = middleware.NewAuth(sp.SessionRepo(ctx), sp.UserRepo(ctx), sp.JWTCfg())
	}
	return sp.authMW
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:       sp.AuthService(ctx),
			SessionTTL: sp.SessionCfg().SessionTTL(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{Serv: sp.UserService(ctx)})
	}
	return sp.userHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{Serv: sp.AdminService(ctx)})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		authMW := sp.AuthMiddleware(ctx)
		authHandler := sp.AuthHandler(ctx)
		gameHandler := sp.GameHandler(ctx)
		userHandler := sp.UserHandler(ctx)
		adminHandler := sp.AdminHandler(ctx)

		r.Route("/api", func(api chi.Router) {
			api.Route("/auth", func(rr chi.Router) {
				rr.Post("/register", authHandler.Register)
				rr.Get("/verify/{token}", authHandler.Verify)
				rr.Post("/login", authHandler.Login)
				rr.Post("/forgot-password", authHandler.ForgotPassword)
				rr.Post("/resend-verification", authHandler.ResendVerification)
				rr.Post("/reset-password/{token}", authHandler.ResetPassword)

				rr.Group(func(auth chi.Router) {
					auth.Use(authMW.RequireUser)
					auth.Post("/logout", authHandler.Logout)
				})
			})

			api.Route("/game", func(rr chi.Router) {
				rr.Use(authMW.RequireUser)
				rr.Post("/result", gameHandler.Result)
				rr.Get("/history", gameHandler.History)
			})

			api.Route("/user", func(rr chi.Router) {
				rr.Use(authMW.RequireUser)
				rr.Get("/me", userHandler.Me)
			})

			api.Route("/admin", func(rr chi.Router) {
				rr.Use(authMW.RequireUser)
				rr.Use(authMW.RequireAdmin)
				rr.Get("/game-settings", adminHandler.ListGameSettings)
				rr.Put("/game-settings/{gameType}", adminHandler.UpdateGameSettings)
				rr.Post("/users/{userID}/ban", adminHandler.BanUser)
				rr.Post("/users/{userID}/unban", adminHandler.UnbanUser)
			})
		})

		sp.router = r
	}

	return sp.router
}
