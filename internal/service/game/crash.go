package game

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/model"
	"math"

	"github.com/shopspring/decimal"
)

var crashMinCashout = decimal.NewFromInt(1)

// crashPoint разыгрывает точку краха раунда:
// floor(100*e/(r+0.1) - 100) / 100, r равномерно в [0,1)
func (s *serv) crashPoint() decimal.Decimal {
	r := s.float64()
	point := math.Floor(100*math.E/(r+0.1)-100) / 100
	return decimal.NewFromFloat(point)
}

func (s *serv) playCrash(req model.GameRequest) (*model.GameOutcome, error) {
	if req.Cashout.LessThan(crashMinCashout) {
		return nil, apperrors.NewValidation("Cashout multiplier must be at least 1.00")
	}

	point := s.crashPoint()

	// Выигрыш только при кэшауте строго ниже точки краха
	won := req.Cashout.LessThan(point)
	multiplier := decimal.Zero
	if won {
		multiplier = req.Cashout
	}

	return &model.GameOutcome{
		GameType:   model.GameCrash,
		CrashPoint: point,
		Won:        won,
		Multiplier: multiplier,
	}, nil
}
