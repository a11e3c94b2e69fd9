package game

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/middleware"
	"casino_app/internal/model"
	"context"
	"errors"
)

// Play разыгрывает один раунд. Исход и выплата считаются на сервере,
// затем в одной транзакции баланс изменяется и пишется запись истории
func (s *serv) Play(ctx context.Context, req model.GameRequest) (*model.SettleResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, apperrors.ErrAuthenticationRequired
	}

	// Валидация ставки
	if !req.Bet.IsPositive() {
		return nil, apperrors.NewValidation("Bet amount must be positive")
	}

	// Лимиты ставок из настроек игры
	settings, err := s.settingsRepo.GetByGameType(ctx, req.GameType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidation("Unknown game type")
		}
		return nil, err
	}
	if req.Bet.LessThan(settings.MinBet) {
		return nil, apperrors.NewValidation("Bet amount is below the minimum bet")
	}
	if req.Bet.GreaterThan(settings.MaxBet) {
		return nil, apperrors.NewValidation("Bet amount is above the maximum bet")
	}

	// Розыгрыш исхода
	outcome, err := s.playRound(req)
	if err != nil {
		return nil, err
	}

	multiplier, payout := computePayout(req.Bet, outcome.Multiplier, settings.MaxPayout)
	outcome.Multiplier = multiplier

	// Инициализируем структуру для хранения результата расчета
	var res *model.SettleResult

	// Начало транзакции, где выполняется расчет раунда
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Баланс читается с блокировкой строки: конкурентные расчеты
		// по одному аккаунту не видят незакоммиченный баланс друг друга
		balance, err := s.userRepo.GetBalanceForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		if balance.LessThan(req.Bet) {
			return apperrors.ErrNotEnoughBalance
		}

		newBalance := balance.Sub(req.Bet).Add(payout)
		if err := s.userRepo.UpdateBalance(txCtx, userID, newBalance); err != nil {
			return err
		}

		entry, err := s.historyRepo.AddEntry(txCtx, &model.GameHistory{
			UserID:     userID,
			GameType:   req.GameType,
			BetAmount:  req.Bet,
			Multiplier: multiplier,
			Payout:     payout,
		})
		if err != nil {
			return err
		}

		res = &model.SettleResult{
			Balance: newBalance,
			History: *entry,
			Outcome: *outcome,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *serv) playRound(req model.GameRequest) (*model.GameOutcome, error) {
	switch req.GameType {
	case model.GameSlots:
		return s.playSlots(req)
	case model.GameDice:
		return s.playDice(req)
	case model.GameCrash:
		return s.playCrash(req)
	default:
		return nil, apperrors.NewValidation("Unknown game type")
	}
}
