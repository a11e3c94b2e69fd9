package admin

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/middleware"
	"casino_app/internal/model"
	"casino_app/internal/repository"
	"casino_app/internal/service"
	"context"
	"encoding/json"
)

type serv struct {
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
}

func NewService(userRepo repository.UserRepository, settingsRepo repository.SettingsRepository) service.AdminService {
	return &serv{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *serv) ListGameSettings(ctx context.Context) ([]model.GameSettings, error) {
	return s.settingsRepo.List(ctx)
}

// UpdateGameSettings обновляет настройки игры и помечает автора изменения
func (s *serv) UpdateGameSettings(ctx context.Context, settings *model.GameSettings) (*model.GameSettings, error) {
	adminID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, apperrors.ErrAuthenticationRequired
	}

	// Обновлять можно только известную игру
	if _, err := s.settingsRepo.GetByGameType(ctx, settings.GameType); err != nil {
		return nil, err
	}

	if settings.MinBet.IsNegative() || settings.MaxBet.LessThan(settings.MinBet) {
		return nil, apperrors.NewValidation("Invalid bet limits")
	}
	if settings.Settings != "" && !json.Valid([]byte(settings.Settings)) {
		return nil, apperrors.NewValidation("Settings must be valid JSON")
	}

	settings.UpdatedBy = adminID
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	return s.settingsRepo.GetByGameType(ctx, settings.GameType)
}

func (s *serv) BanUser(ctx context.Context, userID int, reason string) error {
	return s.userRepo.SetStatus(ctx, userID, model.StatusBanned, reason)
}

func (s *serv) UnbanUser(ctx context.Context, userID int) error {
	return s.userRepo.SetStatus(ctx, userID, model.StatusActive, "")
}
