package auth

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/model"
	"casino_app/pkg/pass"
	"casino_app/pkg/token"
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	// Поиск пользователя: сначала по логину, потом по почте
	user, err := s.userRepo.GetUserByUsername(ctx, login)
	if errors.Is(err, apperrors.ErrNotFound) {
		user, err = s.userRepo.GetUserByEmail(ctx, login)
	}
	if err != nil {
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	if user.Status == model.StatusBanned {
		return nil, apperrors.ErrAuthorizationDenied
	}

	// Создание сессии
	sessionID := uuid.NewString()
	err = s.sessionRepo.CreateSession(ctx, &model.Session{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionCfg.SessionTTL()),
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetLastLogin(ctx, user.ID, time.Now()); err != nil {
		log.Printf("failed to set last login for user %d: %v", user.ID, err)
	}

	// Создание access токена
	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtCfg.AccessTokenSecretKey(),
		s.jwtCfg.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		UserID:      user.ID,
		Username:    user.Username,
		Balance:     user.Balance,
		AccessToken: accessToken,
		SessionID:   sessionID,
	}, nil
}

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.DeleteSession(ctx, sessionID)
}
