package settings_repo

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/model"
	"casino_app/internal/repository"
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table        = "game_settings"
	colID        = "id"
	colGameType  = "game_type"
	colRTP       = "rtp"
	colHouseEdge = "house_edge"
	colMinBet    = "min_bet"
	colMaxBet    = "max_bet"
	colMaxPayout = "max_payout"
	colSettings  = "settings"
	colUpdatedAt = "updated_at"
	colUpdatedBy = "updated_by"
)

var settingsColumns = []string{
	colID, colGameType, colRTP, colHouseEdge,
	colMinBet, colMaxBet, colMaxPayout, colSettings,
	colUpdatedAt, colUpdatedBy,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSettingsRepository(dbc *pgxpool.Pool) repository.SettingsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) GetByGameType(ctx context.Context, gameType string) (*model.GameSettings, error) {
	// Формируем запрос
	query := sq.Select(settingsColumns...).
		From(table).
		Where(sq.Eq{colGameType: gameType}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	row := r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...)
	settings, err := scanSettings(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return settings, nil
}

func (r *repo) List(ctx context.Context) ([]model.GameSettings, error) {
	// Формируем запрос
	query := sq.Select(settingsColumns...).
		From(table).
		OrderBy(colGameType).
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

	var list []model.GameSettings
	for rows.Next() {
		settings, err := scanSettings(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *settings)
	}

	return list, rows.Err()
}

// Upsert - вставляет или обновляет настройки игры
func (r *repo) Upsert(ctx context.Context, settings *model.GameSettings) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colGameType, colRTP, colHouseEdge, colMinBet, colMaxBet,
			colMaxPayout, colSettings, colUpdatedBy).
		Values(settings.GameType, settings.RTP.String(), settings.HouseEdge.String(),
			settings.MinBet.String(), settings.MaxBet.String(),
			settings.MaxPayout.String(), settings.Settings, settings.UpdatedBy).
		Suffix("ON CONFLICT (" + colGameType + ") DO UPDATE SET " +
			colRTP + " = EXCLUDED." + colRTP + ", " +
			colHouseEdge + " = EXCLUDED." + colHouseEdge + ", " +
			colMinBet + " = EXCLUDED." + colMinBet + ", " +
			colMaxBet + " = EXCLUDED." + colMaxBet + ", " +
			colMaxPayout + " = EXCLUDED." + colMaxPayout + ", " +
			colSettings + " = EXCLUDED." + colSettings + ", " +
			colUpdatedBy + " = EXCLUDED." + colUpdatedBy + ", " +
			colUpdatedAt + " = now()").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// SeedDefaults - заливает дефолтные настройки, существующие записи не трогает
func (r *repo) SeedDefaults(ctx context.Context, defaults []model.GameSettings) error {
	for _, settings := range defaults {
		// Формируем запрос
		query := sq.Insert(table).
			Columns(colGameType, colRTP, colHouseEdge, colMinBet, colMaxBet,
				colMaxPayout, colSettings, colUpdatedBy).
			Values(settings.GameType, settings.RTP.String(), settings.HouseEdge.String(),
				settings.MinBet.String(), settings.MaxBet.String(),
				settings.MaxPayout.String(), settings.Settings, settings.UpdatedBy).
			Suffix("ON CONFLICT (" + colGameType + ") DO NOTHING").
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}

		_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
	}

	return nil
}

func scanSettings(row pgx.Row) (*model.GameSettings, error) {
	var (
		settings  model.GameSettings
		rtp       string
		houseEdge string
		minBet    string
		maxBet    string
		maxPayout string
	)

	err := row.Scan(&settings.ID, &settings.GameType, &rtp, &houseEdge,
		&minBet, &maxBet, &maxPayout, &settings.Settings,
		&settings.UpdatedAt, &settings.UpdatedBy)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		raw string
		dst *decimal.Decimal
	}{
		{rtp, &settings.RTP},
		{houseEdge, &settings.HouseEdge},
		{minBet, &settings.MinBet},
		{maxBet, &settings.MaxBet},
		{maxPayout, &settings.MaxPayout},
	}
	for _, f := range fields {
		if *f.dst, err = decimal.NewFromString(f.raw); err != nil {
			return nil, err
		}
	}

	return &settings, nil
}
