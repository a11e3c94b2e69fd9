package auth

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/model"
	"casino_app/pkg/token"
	"context"
	"errors"
	"log"
)

// VerifyEmail подтверждает почту по одноразовому токену.
// Токен очищается при первом использовании
func (s *serv) VerifyEmail(ctx context.Context, verificationToken string) (*model.User, error) {
	user, err := s.userRepo.GetUserByVerificationHash(ctx, token.HashToken(verificationToken))
	if err != nil {
		return nil, err
	}
	if !token.VerifyTokenHash(verificationToken, user.VerificationHash) {
		return nil, apperrors.ErrNotFound
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.userRepo.MarkEmailVerified(txCtx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	user.EmailVerified = true
	user.VerificationHash = ""
	return user, nil
}

// ResendVerification повторно отправляет письмо подтверждения.
// Для незарегистрированной почты отвечаем так же, как для зарегистрированной
func (s *serv) ResendVerification(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if user.EmailVerified {
		return apperrors.NewValidation("Email is already verified")
	}

	verificationToken, err := token.GenerateToken()
	if err != nil {
		return err
	}

	if err := s.userRepo.SetVerificationHash(ctx, user.ID, token.HashToken(verificationToken)); err != nil {
		return err
	}

	verificationLink := s.appCfg.BaseURL() + "/api/auth/verify/" + verificationToken
	if err := s.mail.SendVerificationEmail(user.Email, verificationLink); err != nil {
		log.Printf("failed to resend verification email to user %d: %v", user.ID, err)
		return apperrors.ErrMailDelivery
	}

	return nil
}
