package auth

import (
	"casino_app/internal/apperrors"
	"casino_app/pkg/pass"
	"casino_app/pkg/token"
	"context"
	"errors"
	"log"
	"time"
)

// Время жизни токена сброса пароля
const resetTokenTTL = time.Hour

// ForgotPassword выдает токен сброса и отправляет письмо.
// Для незарегистрированной почты отвечаем так же, как для зарегистрированной
func (s *serv) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	resetToken, err := token.GenerateToken()
	if err != nil {
		return err
	}

	expiry := time.Now().Add(resetTokenTTL)
	if err := s.userRepo.SetResetHash(ctx, user.ID, token.HashToken(resetToken), expiry); err != nil {
		return err
	}

	resetLink := s.appCfg.BaseURL() + "/auth/reset-password/" + resetToken
	if err := s.mail.SendPasswordResetEmail(user.Email, resetLink); err != nil {
		log.Printf("failed to send reset email to user %d: %v", user.ID, err)
		return apperrors.ErrMailDelivery
	}

	return nil
}

// ResetPassword меняет пароль по одноразовому токену сброса
func (s *serv) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByResetHash(ctx, token.HashToken(resetToken))
	if err != nil {
		return err
	}
	if !token.VerifyTokenHash(resetToken, user.ResetHash) {
		return apperrors.ErrNotFound
	}

	// Токен с истекшим сроком не принимается, даже если строка совпала
	if user.ResetExpiry == nil || user.ResetExpiry.Before(time.Now()) {
		return apperrors.NewValidation("Reset token has expired")
	}

	passwordHash, err := pass.HashPassword(newPassword)
	if err != nil {
		return err
	}

	// UpdatePassword заодно очищает токен сброса
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.userRepo.UpdatePassword(txCtx, user.ID, passwordHash)
	})
}
