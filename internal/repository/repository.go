package repository

import (
	"casino_app/internal/model"
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByVerificationHash(ctx context.Context, tokenHash string) (*model.User, error)
	GetUserByResetHash(ctx context.Context, tokenHash string) (*model.User, error)

	// GetBalanceForUpdate читает баланс с блокировкой строки (SELECT ... FOR UPDATE).
	// Вызывается только внутри транзакции
	GetBalanceForUpdate(ctx context.Context, id int) (decimal.Decimal, error)
	UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error

	MarkEmailVerified(ctx context.Context, id int) error
	SetVerificationHash(ctx context.Context, id int, tokenHash string) error
	SetResetHash(ctx context.Context, id int, tokenHash string, expiry time.Time) error
	// UpdatePassword меняет хэш пароля и очищает токен сброса
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	SetLastLogin(ctx context.Context, id int, at time.Time) error
	SetStatus(ctx context.Context, id int, status string, banReason string) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// DeleteExpired удаляет просроченные сессии, возвращает количество удаленных
	DeleteExpired(ctx context.Context) (int64, error)
}

type HistoryRepository interface {
	AddEntry(ctx context.Context, entry *model.GameHistory) (*model.GameHistory, error)
	GetUserHistory(ctx context.Context, userID int) ([]model.GameHistory, error)
}

type SettingsRepository interface {
	GetByGameType(ctx context.Context, gameType string) (*model.GameSettings, error)
	List(ctx context.Context) ([]model.GameSettings, error)
	Upsert(ctx context.Context, settings *model.GameSettings) error
	// SeedDefaults заливает дефолты, не трогая существующие записи
	SeedDefaults(ctx context.Context, defaults []model.GameSettings) error
}
