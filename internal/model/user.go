package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Статусы аккаунта
const (
	StatusActive = "active"
	StatusBanned = "banned"
)

type User struct {
	ID               int
	Username         string
	Email            string
	PasswordHash     string
	Balance          decimal.Decimal
	EmailVerified    bool
	VerificationHash string // SHA-256 хэш токена подтверждения почты, пустая строка если токена нет
	ResetHash        string // SHA-256 хэш токена сброса пароля
	ResetExpiry      *time.Time
	Role             string
	Status           string
	BanReason        string
	LastLoginAt      *time.Time
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// AuthData - результат успешного входа
type AuthData struct {
	UserID      int
	Username    string
	Balance     decimal.Decimal
	AccessToken string
	SessionID   string
}
