package auth

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/model"
	"casino_app/pkg/pass"
	"casino_app/pkg/token"
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"
)

// Стартовый баланс нового аккаунта
var initialBalance = decimal.NewFromInt(1000)

func (s *serv) Register(ctx context.Context, username, email, password string) (*model.User, bool, error) {
	// Валидация входных данных
	if err := validateUsername(username); err != nil {
		return nil, false, err
	}
	if err := validateEmail(email); err != nil {
		return nil, false, err
	}
	if err := validatePassword(password); err != nil {
		return nil, false, err
	}

	// Проверка занятости логина
	_, err := s.userRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, false, apperrors.ErrConflict
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, err
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(password)
	if err != nil {
		return nil, false, err
	}

	// Генерация одноразового токена подтверждения почты
	verificationToken, err := token.GenerateToken()
	if err != nil {
		return nil, false, err
	}

	user := &model.User{
		Username:         username,
		Email:            email,
		PasswordHash:     passwordHash,
		Balance:          initialBalance,
		EmailVerified:    false,
		VerificationHash: token.HashToken(verificationToken),
		Role:             model.RoleUser,
		Status:           model.StatusActive,
	}

	// Начало транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		user.ID, err = s.userRepo.CreateUser(txCtx, user)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	// Письмо отправляется после коммита: аккаунт остается даже при сбое почты
	verificationLink := s.appCfg.BaseURL() + "/api/auth/verify/" + verificationToken
	if err := s.mail.SendVerificationEmail(user.Email, verificationLink); err != nil {
		log.Printf("failed to send verification email to user %d: %v", user.ID, err)
		return user, false, nil
	}

	return user, true, nil
}
