package middleware

import (
	"casino_app/internal/config"
	"casino_app/internal/model"
	"casino_app/internal/repository"
	"casino_app/pkg/resp"
	"casino_app/pkg/token"
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type ctxKey int

const userIDKey ctxKey = iota

// SessionCookieName - имя cookie с идентификатором сессии
const SessionCookieName = "session_id"

// UserIDFromContext возвращает ID аутентифицированного пользователя
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

type Auth struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	jwtCfg      config.JWTConfig
}

func NewAuth(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, jwtCfg config.JWTConfig) *Auth {
	return &Auth{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		jwtCfg:      jwtCfg,
	}
}

// RequireUser аутентифицирует запрос по session_id cookie
// или по access токену в заголовке Authorization
func (m *Auth) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := m.authenticate(r)
		if !ok {
			resp.WriteMessage(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// RequireAdmin пропускает только пользователей с ролью admin.
// Вешается поверх RequireUser
func (m *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			resp.WriteMessage(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		user, err := m.userRepo.GetUser(r.Context(), userID)
		if err != nil || user.Role != model.RoleAdmin {
			resp.WriteMessage(w, http.StatusForbidden, "Forbidden")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Auth) authenticate(r *http.Request) (int, bool) {
	// Сперва access токен из заголовка
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		claims, err := token.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "), m.jwtCfg.AccessTokenSecretKey())
		if err != nil {
			return 0, false
		}
		userID, err := strconv.Atoi(claims.ID)
		if err != nil {
			return 0, false
		}
		return userID, true
	}

	// Иначе сессионная cookie
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return 0, false
	}

	session, err := m.sessionRepo.GetSession(r.Context(), c.Value)
	if err != nil {
		return 0, false
	}
	if session.ExpiresAt.Before(time.Now()) {
		return 0, false
	}

	return session.UserID, true
}
