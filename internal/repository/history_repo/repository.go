package history_repo

import (
	"casino_app/internal/model"
	"casino_app/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table         = "game_history"
	colID         = "id"
	colUserID     = "user_id"
	colGameType   = "game_type"
	colBetAmount  = "bet_amount"
	colMultiplier = "multiplier"
	colPayout     = "payout"
	colTimestamp  = "timestamp"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewHistoryRepository(dbc *pgxpool.Pool) repository.HistoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// AddEntry - добавляет запись истории. ID и timestamp назначает БД
func (r *repo) AddEntry(ctx context.Context, entry *model.GameHistory) (*model.GameHistory, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colGameType, colBetAmount, colMultiplier, colPayout).
		Values(entry.UserID, entry.GameType, entry.BetAmount.String(),
			entry.Multiplier.String(), entry.Payout.String()).
		Suffix("RETURNING " + colID + ", " + colTimestamp).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	saved := *entry
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&saved.ID, &saved.Timestamp)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// GetUserHistory - история пользователя, новые записи первыми
func (r *repo) GetUserHistory(ctx context.Context, userID int) ([]model.GameHistory, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colGameType, colBetAmount, colMultiplier, colPayout, colTimestamp).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colTimestamp + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.GameHistory
	for rows.Next() {
		var (
			entry      model.GameHistory
			betAmount  string
			multiplier string
			payout     string
		)
		err = rows.Scan(&entry.ID, &entry.UserID, &entry.GameType,
			&betAmount, &multiplier, &payout, &entry.Timestamp)
		if err != nil {
			return nil, err
		}

		if entry.BetAmount, err = decimal.NewFromString(betAmount); err != nil {
			return nil, err
		}
		if entry.Multiplier, err = decimal.NewFromString(multiplier); err != nil {
			return nil, err
		}
		if entry.Payout, err = decimal.NewFromString(payout); err != nil {
			return nil, err
		}

		history = append(history, entry)
	}

	return history, rows.Err()
}
