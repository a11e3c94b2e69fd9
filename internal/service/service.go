package service

import (
	"casino_app/internal/model"
	"context"
)

type AuthService interface {
	// Register создает пользователя и отправляет письмо подтверждения.
	// mailSent=false означает, что аккаунт создан, но письмо не ушло
	Register(ctx context.Context, username, email, password string) (user *model.User, mailSent bool, err error)
	VerifyEmail(ctx context.Context, verificationToken string) (*model.User, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Logout(ctx context.Context, sessionID string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	ResendVerification(ctx context.Context, email string) error
}

type GameService interface {
	// Play разыгрывает раунд на сервере и атомарно проводит расчет по балансу
	Play(ctx context.Context, req model.GameRequest) (*model.SettleResult, error)
	History(ctx context.Context) ([]model.GameHistory, error)
}

type UserService interface {
	Me(ctx context.Context) (*model.User, error)
}

type AdminService interface {
	ListGameSettings(ctx context.Context) ([]model.GameSettings, error)
	UpdateGameSettings(ctx context.Context, settings *model.GameSettings) (*model.GameSettings, error)
	BanUser(ctx context.Context, userID int, reason string) error
	UnbanUser(ctx context.Context, userID int) error
}
