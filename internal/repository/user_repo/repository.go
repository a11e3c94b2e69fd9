package user_repo

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/model"
	"casino_app/internal/repository"
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table               = "users"
	colID               = "id"
	colUsername         = "username"
	colEmail            = "email"
	colPasswordHash     = "password_hash"
	colBalance          = "balance"
	colEmailVerified    = "email_verified"
	colVerificationHash = "verification_hash"
	colResetHash        = "reset_hash"
	colResetExpiry      = "reset_expiry"
	colRole             = "role"
	colStatus           = "status"
	colBanReason        = "ban_reason"
	colLastLoginAt      = "last_login_at"
)

var userColumns = []string{
	colID, colUsername, colEmail, colPasswordHash, colBalance,
	colEmailVerified, colVerificationHash, colResetHash, colResetExpiry,
	colRole, colStatus, colBanReason, colLastLoginAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUsername, colEmail, colPasswordHash, colBalance,
			colEmailVerified, colVerificationHash, colRole, colStatus).
		Values(user.Username, user.Email, user.PasswordHash, user.Balance.String(),
			user.EmailVerified, nullableString(user.VerificationHash), user.Role, user.Status).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repo) GetUser(ctx context.Context, id int) (*model.User, error) {
	return r.getUserWhere(ctx, sq.Eq{colID: id})
}

func (r *repo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getUserWhere(ctx, sq.Eq{colUsername: username})
}

func (r *repo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getUserWhere(ctx, sq.Eq{colEmail: email})
}

func (r *repo) GetUserByVerificationHash(ctx context.Context, tokenHash string) (*model.User, error) {
	return r.getUserWhere(ctx, sq.Eq{colVerificationHash: tokenHash})
}

func (r *repo) GetUserByResetHash(ctx context.Context, tokenHash string) (*model.User, error) {
	return r.getUserWhere(ctx, sq.Eq{colResetHash: tokenHash})
}

// getUserWhere - общая выборка пользователя по условию
func (r *repo) getUserWhere(ctx context.Context, where sq.Eq) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(userColumns...).
		From(table).
		Where(where).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	row := r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		user        model.User
		balance     string
		verifyHash  sql.NullString
		resetHash   sql.NullString
		resetExpiry sql.NullTime
		banReason   sql.NullString
		lastLogin   sql.NullTime
	)

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &balance,
		&user.EmailVerified, &verifyHash, &resetHash, &resetExpiry,
		&user.Role, &user.Status, &banReason, &lastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	user.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, err
	}
	user.VerificationHash = verifyHash.String
	user.ResetHash = resetHash.String
	if resetExpiry.Valid {
		t := resetExpiry.Time
		user.ResetExpiry = &t
	}
	user.BanReason = banReason.String
	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLoginAt = &t
	}

	return &user, nil
}

// GetBalanceForUpdate - читает баланс пользователя с блокировкой строки.
// Конкурентные расчеты по одному аккаунту сериализуются на этой блокировке
func (r *repo) GetBalanceForUpdate(ctx context.Context, id int) (decimal.Decimal, error) {
	// Формируем запрос
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, err
	}

	return decimal.NewFromString(balance)
}

// UpdateBalance - записывает новый баланс пользователя
func (r *repo) UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error {
	return r.updateWhereID(ctx, id, sq.Update(table).Set(colBalance, balance.String()))
}

// MarkEmailVerified - подтверждает почту и очищает одноразовый токен
func (r *repo) MarkEmailVerified(ctx context.Context, id int) error {
	return r.updateWhereID(ctx, id, sq.Update(table).
		Set(colEmailVerified, true).
		Set(colVerificationHash, nil))
}

func (r *repo) SetVerificationHash(ctx context.Context, id int, tokenHash string) error {
	return r.updateWhereID(ctx, id, sq.Update(table).
		Set(colVerificationHash, tokenHash))
}

func (r *repo) SetResetHash(ctx context.Context, id int, tokenHash string, expiry time.Time) error {
	return r.updateWhereID(ctx, id, sq.Update(table).
		Set(colResetHash, tokenHash).
		Set(colResetExpiry, expiry))
}

// UpdatePassword - меняет хэш пароля и очищает токен сброса
func (r *repo) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	return r.updateWhereID(ctx, id, sq.Update(table).
		Set(colPasswordHash, passwordHash).
		Set(colResetHash, nil).
		Set(colResetExpiry, nil))
}

func (r *repo) SetLastLogin(ctx context.Context, id int, at time.Time) error {
	return r.updateWhereID(ctx, id, sq.Update(table).Set(colLastLoginAt, at))
}

func (r *repo) SetStatus(ctx context.Context, id int, status string, banReason string) error {
	return r.updateWhereID(ctx, id, sq.Update(table).
		Set(colStatus, status).
		Set(colBanReason, nullableString(banReason)))
}

func (r *repo) updateWhereID(ctx context.Context, id int, builder sq.UpdateBuilder) error {
	sqlStr, args, err := builder.
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
