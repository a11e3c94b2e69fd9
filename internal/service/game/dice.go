package game

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/model"

	"github.com/shopspring/decimal"
)

const (
	diceMinTarget = 1
	diceMaxTarget = 98
)

// Числитель множителя. 98 вместо 100 - заложенное преимущество казино
var diceNumerator = decimal.NewFromInt(98)

// rollDice бросает кубик, равномерно 1..100
func (s *serv) rollDice() int {
	return s.intn(100) + 1
}

// diceMultiplier - множитель выигрыша по предсказанию и цели.
// over: 98/(99-target), under: 98/target
func diceMultiplier(prediction string, target int) (decimal.Decimal, error) {
	if target < diceMinTarget || target > diceMaxTarget {
		return decimal.Zero, apperrors.NewValidation("Target must be between 1 and 98")
	}

	switch prediction {
	case model.PredictionOver:
		return diceNumerator.DivRound(decimal.NewFromInt(int64(99-target)), 2), nil
	case model.PredictionUnder:
		return diceNumerator.DivRound(decimal.NewFromInt(int64(target)), 2), nil
	default:
		return decimal.Zero, apperrors.NewValidation("Prediction must be over or under")
	}
}

// diceWin - over выигрывает строго выше цели, under строго ниже
func diceWin(roll int, prediction string, target int) bool {
	if prediction == model.PredictionOver {
		return roll > target
	}
	return roll < target
}

func (s *serv) playDice(req model.GameRequest) (*model.GameOutcome, error) {
	multiplier, err := diceMultiplier(req.Prediction, req.Target)
	if err != nil {
		return nil, err
	}

	roll := s.rollDice()
	won := diceWin(roll, req.Prediction, req.Target)
	if !won {
		multiplier = decimal.Zero
	}

	return &model.GameOutcome{
		GameType:   model.GameDice,
		Roll:       roll,
		Won:        won,
		Multiplier: multiplier,
	}, nil
}
