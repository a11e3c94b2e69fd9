package app

import (
	"casino_app/internal/config"
	"casino_app/internal/model"
	"context"
	"log"
	"net/http"
	"time"
)

type App struct {
	serviceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{serviceProvider: newServiceProvider()}
}

func (a *App) Run() error {
	ctx := context.Background()

	// Загружаем переменные окружения
	err := config.Load(".env")
	if err != nil {
		log.Printf("config: .env not loaded: %v", err)
	}

	// Сидируем настройки игр значениями по умолчанию
	err = a.seedGameSettings(ctx)
	if err != nil {
		return err
	}

	// Запускаем фоновую очистку просроченных сессий
	go a.sweepSessions(ctx)

	addr := a.serviceProvider.HTTPCfg().Address()
	router := a.serviceProvider.Router(ctx)

	log.Printf("server listening on %s", addr)
	return http.ListenAndServe(addr, router)
}

func (a *App) seedGameSettings(ctx context.Context) error {
	gamesCfg := a.serviceProvider.GamesCfg()

	defaults := make([]model.GameSettings, 0, len(gamesCfg))
	for _, gc := range gamesCfg {
		defaults = append(defaults, model.GameSettings{
			GameType:  gc.GameType(),
			RTP:       gc.RTP(),
			HouseEdge: gc.HouseEdge(),
			MinBet:    gc.MinBet(),
			MaxBet:    gc.MaxBet(),
			MaxPayout: gc.MaxPayout(),
			Settings:  gc.Settings(),
		})
	}

	return a.serviceProvider.SettingsRepo(ctx).SeedDefaults(ctx, defaults)
}

func (a *App) sweepSessions(ctx context.Context) {
	sessionRepo := a.serviceProvider.SessionRepo(ctx)
	interval := a.serviceProvider.SessionCfg().SweepInterval()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		deleted, err := sessionRepo.DeleteExpired(ctx)
		if err != nil {
			log.Printf("session sweep: %v", err)
			continue
		}
		if deleted > 0 {
			log.Printf("session sweep: removed %d expired sessions", deleted)
		}
	}
}
