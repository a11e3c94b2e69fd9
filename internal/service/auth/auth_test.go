package auth

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/model"
	"casino_app/pkg/pass"
	"casino_app/pkg/token"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

type noopTxManager struct{}

func (noopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (noopTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memoryUserRepo struct {
	nextID int
	users  map[int]*model.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{nextID: 1, users: map[int]*model.User{}}
}

func (r *memoryUserRepo) CreateUser(_ context.Context, user *model.User) (int, error) {
	id := r.nextID
	r.nextID++
	saved := *user
	saved.ID = id
	r.users[id] = &saved
	return id, nil
}

func (r *memoryUserRepo) GetUser(_ context.Context, id int) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memoryUserRepo) findBy(match func(*model.User) bool) (*model.User, error) {
	for _, u := range r.users {
		if match(u) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	return r.findBy(func(u *model.User) bool { return u.Username == username })
}

func (r *memoryUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return r.findBy(func(u *model.User) bool { return u.Email == email })
}

func (r *memoryUserRepo) GetUserByVerificationHash(_ context.Context, hash string) (*model.User, error) {
	return r.findBy(func(u *model.User) bool { return u.VerificationHash != "" && u.VerificationHash == hash })
}

func (r *memoryUserRepo) GetUserByResetHash(_ context.Context, hash string) (*model.User, error) {
	return r.findBy(func(u *model.User) bool { return u.ResetHash != "" && u.ResetHash == hash })
}

func (r *memoryUserRepo) GetBalanceForUpdate(_ context.Context, id int) (decimal.Decimal, error) {
	u, ok := r.users[id]
	if !ok {
		return decimal.Zero, apperrors.ErrNotFound
	}
	return u.Balance, nil
}

func (r *memoryUserRepo) UpdateBalance(_ context.Context, id int, balance decimal.Decimal) error {
	return r.update(id, func(u *model.User) { u.Balance = balance })
}

func (r *memoryUserRepo) MarkEmailVerified(_ context.Context, id int) error {
	return r.update(id, func(u *model.User) {
		u.EmailVerified = true
		u.VerificationHash = ""
	})
}

func (r *memoryUserRepo) SetVerificationHash(_ context.Context, id int, hash string) error {
	return r.update(id, func(u *model.User) { u.VerificationHash = hash })
}

func (r *memoryUserRepo) SetResetHash(_ context.Context, id int, hash string, expiry time.Time) error {
	return r.update(id, func(u *model.User) {
		u.ResetHash = hash
		u.ResetExpiry = &expiry
	})
}

func (r *memoryUserRepo) UpdatePassword(_ context.Context, id int, passwordHash string) error {
	return r.update(id, func(u *model.User) {
		u.PasswordHash = passwordHash
		u.ResetHash = ""
		u.ResetExpiry = nil
	})
}

func (r *memoryUserRepo) SetLastLogin(_ context.Context, id int, at time.Time) error {
	return r.update(id, func(u *model.User) { u.LastLoginAt = &at })
}

func (r *memoryUserRepo) SetStatus(_ context.Context, id int, status, banReason string) error {
	return r.update(id, func(u *model.User) {
		u.Status = status
		u.BanReason = banReason
	})
}

func (r *memoryUserRepo) update(id int, fn func(*model.User)) error {
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	fn(u)
	return nil
}

type memorySessionRepo struct {
	sessions map[string]*model.Session
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: map[string]*model.Session{}}
}

func (r *memorySessionRepo) CreateSession(_ context.Context, s *model.Session) error {
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *memorySessionRepo) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *memorySessionRepo) DeleteSession(_ context.Context, sessionID string) error {
	delete(r.sessions, sessionID)
	return nil
}

func (r *memorySessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	var n int64
	for id, s := range r.sessions {
		if s.ExpiresAt.Before(time.Now()) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

type recordingMailer struct {
	fail              bool
	verificationLinks map[string]string // email -> последняя ссылка
	resetLinks        map[string]string
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{
		verificationLinks: map[string]string{},
		resetLinks:        map[string]string{},
	}
}

func (m *recordingMailer) SendVerificationEmail(to, link string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.verificationLinks[to] = link
	return nil
}

func (m *recordingMailer) SendPasswordResetEmail(to, link string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.resetLinks[to] = link
	return nil
}

type stubJWTCfg struct{}

func (stubJWTCfg) AccessTokenSecretKey() []byte       { return []byte("test-secret") }
func (stubJWTCfg) AccessTokenDuration() time.Duration { return time.Minute }

type stubSessionCfg struct{}

func (stubSessionCfg) SessionTTL() time.Duration    { return time.Hour }
func (stubSessionCfg) SweepInterval() time.Duration { return time.Hour }

type stubAppCfg struct{}

func (stubAppCfg) BaseURL() string { return "http://localhost:8080" }

type authFixture struct {
	serv     *serv
	users    *memoryUserRepo
	sessions *memorySessionRepo
	mail     *recordingMailer
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	users := newMemoryUserRepo()
	sessions := newMemorySessionRepo()
	mail := newRecordingMailer()

	svc := NewService(noopTxManager{}, users, sessions, stubJWTCfg{}, stubSessionCfg{}, stubAppCfg{}, mail)
	return &authFixture{
		serv:     svc.(*serv),
		users:    users,
		sessions: sessions,
		mail:     mail,
	}
}

// mailedToken вырезает токен из последней отправленной ссылки
func mailedToken(t *testing.T, link string) string {
	t.Helper()
	i := strings.LastIndex(link, "/")
	if i < 0 || i == len(link)-1 {
		t.Fatalf("link %q has no token", link)
	}
	return link[i+1:]
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user, mailSent, err := f.serv.Register(ctx, "player1", "player1@gmail.com", "Passw0rd!")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if !mailSent {
		t.Error("mailSent = false, want true")
	}
	if user.EmailVerified {
		t.Error("new user is already verified")
	}
	if !user.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("initial balance = %s, want 1000", user.Balance)
	}
	if user.Role != model.RoleUser || user.Status != model.StatusActive {
		t.Errorf("role/status = %s/%s", user.Role, user.Status)
	}

	// Пароль хранится только как bcrypt-хэш
	if user.PasswordHash == "Passw0rd!" {
		t.Fatal("password stored in plain text")
	}
	if !pass.VerifyPassword(user.PasswordHash, "Passw0rd!") {
		t.Error("stored hash does not verify the password")
	}

	// В письме сырой токен, в хранилище его хэш
	link, ok := f.mail.verificationLinks["player1@gmail.com"]
	if !ok {
		t.Fatal("verification email not sent")
	}
	raw := mailedToken(t, link)
	if raw == user.VerificationHash {
		t.Error("raw token stored instead of hash")
	}
	if token.HashToken(raw) != user.VerificationHash {
		t.Error("stored hash does not match mailed token")
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"short username", "ab", "user@gmail.com", "Passw0rd!"},
		{"non-gmail email", "player1", "player1@yahoo.com", "Passw0rd!"},
		{"weak password", "player1", "player1@gmail.com", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.serv.Register(ctx, tt.username, tt.email, tt.password)
			if !apperrors.IsValidation(err) {
				t.Errorf("Register() error = %v, want validation error", err)
			}
		})
	}

	if len(f.users.users) != 0 {
		t.Errorf("rejected registrations created %d users", len(f.users.users))
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := f.serv.Register(ctx, "player1", "player1@gmail.com", "Passw0rd!"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, _, err := f.serv.Register(ctx, "player1", "other@gmail.com", "Passw0rd!")
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("Register() error = %v, want ErrConflict", err)
	}
}

func TestRegisterMailFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.mail.fail = true

	user, mailSent, err := f.serv.Register(context.Background(), "player1", "player1@gmail.com", "Passw0rd!")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	// Аккаунт создан, несмотря на сбой почты
	if mailSent {
		t.Error("mailSent = true, want false")
	}
	if _, ok := f.users.users[user.ID]; !ok {
		t.Error("user not persisted")
	}
}

func TestVerifyEmailSingleUse(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := f.serv.Register(ctx, "player1", "player1@gmail.com", "Passw0rd!"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	raw := mailedToken(t, f.mail.verificationLinks["player1@gmail.com"])

	user, err := f.serv.VerifyEmail(ctx, raw)
	if err != nil {
		t.Fatalf("VerifyEmail() error = %v", err)
	}
	if !user.EmailVerified {
		t.Error("user not marked verified")
	}

	// Повторное использование токена отклоняется
	if _, err := f.serv.VerifyEmail(ctx, raw); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("second VerifyEmail() error = %v, want ErrNotFound", err)
	}
}

type collidingUserRepo struct {
	*memoryUserRepo
	user *model.User
}

func (r *collidingUserRepo) GetUserByVerificationHash(_ context.Context, _ string) (*model.User, error) {
	copied := *r.user
	return &copied, nil
}

func (r *collidingUserRepo) GetUserByResetHash(_ context.Context, _ string) (*model.User, error) {
	copied := *r.user
	return &copied, nil
}

// Строка нашлась, но хэш не совпадает с присланным токеном - отказ
func TestTokenHashRecheck(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	expiry := time.Now().Add(time.Hour)
	stale := &model.User{
		ID:               1,
		VerificationHash: token.HashToken("other-token"),
		ResetHash:        token.HashToken("other-token"),
		ResetExpiry:      &expiry,
	}
	f.serv.userRepo = &collidingUserRepo{memoryUserRepo: f.users, user: stale}

	if _, err := f.serv.VerifyEmail(ctx, "mailed-token"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("VerifyEmail() error = %v, want ErrNotFound", err)
	}
	if err := f.serv.ResetPassword(ctx, "mailed-token", "N3wPassw0rd!"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("ResetPassword() error = %v, want ErrNotFound", err)
	}
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	f := newAuthFixture(t)

	if _, err := f.serv.VerifyEmail(context.Background(), "bogus"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("VerifyEmail() error = %v, want ErrNotFound", err)
	}
}

// registerVerified регистрирует и сразу подтверждает пользователя
func registerVerified(t *testing.T, f *authFixture, username, email, password string) *model.User {
	t.Helper()
	ctx := context.Background()

	if _, _, err := f.serv.Register(ctx, username, email, password); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	user, err := f.serv.VerifyEmail(ctx, mailedToken(t, f.mail.verificationLinks[email]))
	if err != nil {
		t.Fatalf("VerifyEmail() error = %v", err)
	}
	return user
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := registerVerified(t, f, "player1", "player1@gmail.com", "Passw0rd!")

	auth, err := f.serv.Login(ctx, "player1", "Passw0rd!")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if auth.UserID != user.ID || auth.Username != "player1" {
		t.Errorf("auth data = %+v", auth)
	}

	// Сессия создана с привязкой к пользователю
	session, err := f.sessions.GetSession(ctx, auth.SessionID)
	if err != nil {
		t.Fatalf("session not created: %v", err)
	}
	if session.UserID != user.ID {
		t.Errorf("session user = %d, want %d", session.UserID, user.ID)
	}

	// Access токен валиден и указывает на того же пользователя
	claims, err := token.VerifyAccessToken(auth.AccessToken, stubJWTCfg{}.AccessTokenSecretKey())
	if err != nil {
		t.Fatalf("VerifyAccessToken() error = %v", err)
	}
	if claims.ID != strconv.Itoa(user.ID) {
		t.Errorf("claims.ID = %s, want %d", claims.ID, user.ID)
	}
}

func TestLoginByEmail(t *testing.T) {
	f := newAuthFixture(t)
	registerVerified(t, f, "player1", "player1@gmail.com", "Passw0rd!")

	if _, err := f.serv.Login(context.Background(), "player1@gmail.com", "Passw0rd!"); err != nil {
		t.Fatalf("Login() by email error = %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := registerVerified(t, f, "player1", "player1@gmail.com", "Passw0rd!")

	if _, _, err := f.serv.Register(ctx, "pending", "pending@gmail.com", "Passw0rd!"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := f.users.SetStatus(ctx, user.ID, model.StatusBanned, "abuse"); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	tests := []struct {
		name     string
		login    string
		password string
		want     error
	}{
		{"unknown user", "ghost", "Passw0rd!", apperrors.ErrNotFound},
		{"wrong password", "pending", "Wr0ngPass!", apperrors.ErrInvalidCredentials},
		{"unverified email", "pending", "Passw0rd!", apperrors.ErrEmailNotVerified},
		{"banned account", "player1", "Passw0rd!", apperrors.ErrAuthorizationDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.serv.Login(ctx, tt.login, tt.password)
			if !errors.Is(err, tt.want) {
				t.Errorf("Login() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	registerVerified(t, f, "player1", "player1@gmail.com", "Passw0rd!")

	auth, err := f.serv.Login(ctx, "player1", "Passw0rd!")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := f.serv.Logout(ctx, auth.SessionID); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := f.sessions.GetSession(ctx, auth.SessionID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("session still present after logout: %v", err)
	}
}

func TestForgotPasswordUniformResponse(t *testing.T) {
	f := newAuthFixture(t)

	// Для незарегистрированной почты поведение неотличимо от успешного
	if err := f.serv.ForgotPassword(context.Background(), "nobody@gmail.com"); err != nil {
		t.Fatalf("ForgotPassword() for unknown email error = %v", err)
	}
	if len(f.mail.resetLinks) != 0 {
		t.Error("reset email sent for unknown address")
	}
}

func TestResetPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	registerVerified(t, f, "player1", "player1@gmail.com", "Passw0rd!")

	if err := f.serv.ForgotPassword(ctx, "player1@gmail.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	raw := mailedToken(t, f.mail.resetLinks["player1@gmail.com"])

	if err := f.serv.ResetPassword(ctx, raw, "N3wPassw0rd!"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	// Старый пароль больше не подходит, новый работает
	if _, err := f.serv.Login(ctx, "player1", "Passw0rd!"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("old password still accepted: %v", err)
	}
	if _, err := f.serv.Login(ctx, "player1", "N3wPassw0rd!"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}

	// Токен одноразовый
	if err := f.serv.ResetPassword(ctx, raw, "An0therPass!"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("second ResetPassword() error = %v, want ErrNotFound", err)
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := registerVerified(t, f, "player1", "player1@gmail.com", "Passw0rd!")

	if err := f.serv.ForgotPassword(ctx, "player1@gmail.com"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	raw := mailedToken(t, f.mail.resetLinks["player1@gmail.com"])

	// Сдвигаем срок токена в прошлое
	expired := time.Now().Add(-time.Minute)
	f.users.users[user.ID].ResetExpiry = &expired

	err := f.serv.ResetPassword(ctx, raw, "N3wPassw0rd!")
	if !apperrors.IsValidation(err) {
		t.Fatalf("ResetPassword() error = %v, want validation error", err)
	}
}

func TestResetPasswordWeakPassword(t *testing.T) {
	f := newAuthFixture(t)

	err := f.serv.ResetPassword(context.Background(), "whatever", "weak")
	if !apperrors.IsValidation(err) {
		t.Fatalf("ResetPassword() error = %v, want validation error", err)
	}
}

func TestResendVerification(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := f.serv.Register(ctx, "player1", "player1@gmail.com", "Passw0rd!"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	first := mailedToken(t, f.mail.verificationLinks["player1@gmail.com"])

	if err := f.serv.ResendVerification(ctx, "player1@gmail.com"); err != nil {
		t.Fatalf("ResendVerification() error = %v", err)
	}
	second := mailedToken(t, f.mail.verificationLinks["player1@gmail.com"])

	// Старый токен заменен, работает только новый
	if _, err := f.serv.VerifyEmail(ctx, first); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("old token still accepted: %v", err)
	}
	if _, err := f.serv.VerifyEmail(ctx, second); err != nil {
		t.Errorf("new token rejected: %v", err)
	}

	// Незарегистрированная почта неотличима от успешной
	if err := f.serv.ResendVerification(ctx, "nobody@gmail.com"); err != nil {
		t.Errorf("ResendVerification() for unknown email error = %v", err)
	}
}

func TestResendVerificationAlreadyVerified(t *testing.T) {
	f := newAuthFixture(t)
	registerVerified(t, f, "player1", "player1@gmail.com", "Passw0rd!")

	err := f.serv.ResendVerification(context.Background(), "player1@gmail.com")
	if !apperrors.IsValidation(err) {
		t.Fatalf("ResendVerification() error = %v, want validation error", err)
	}
}
