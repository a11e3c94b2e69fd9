package game

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/model"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDiceMultiplier(t *testing.T) {
	tests := []struct {
		name       string
		prediction string
		target     int
		want       string
	}{
		{"over 50 pays even", model.PredictionOver, 50, "2"},
		{"under 49 pays even", model.PredictionUnder, 49, "2"},
		{"over 98 pays max", model.PredictionOver, 98, "98"},
		{"under 1 pays max", model.PredictionUnder, 1, "98"},
		{"over 1 pays least", model.PredictionOver, 1, "1"},
		{"over 25 rounds to cents", model.PredictionOver, 25, "1.32"},
		{"under 3 rounds to cents", model.PredictionUnder, 3, "32.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := diceMultiplier(tt.prediction, tt.target)
			if err != nil {
				t.Fatalf("diceMultiplier() error = %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("diceMultiplier(%s, %d) = %s, want %s", tt.prediction, tt.target, got, tt.want)
			}
		})
	}
}

func TestDiceMultiplierInvalid(t *testing.T) {
	tests := []struct {
		name       string
		prediction string
		target     int
	}{
		{"target too low", model.PredictionOver, 0},
		{"target too high", model.PredictionUnder, 99},
		{"negative target", model.PredictionOver, -5},
		{"unknown prediction", "exactly", 50},
		{"empty prediction", "", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := diceMultiplier(tt.prediction, tt.target)
			if !apperrors.IsValidation(err) {
				t.Errorf("diceMultiplier(%s, %d) error = %v, want validation error", tt.prediction, tt.target, err)
			}
		})
	}
}

func TestDiceWin(t *testing.T) {
	tests := []struct {
		name       string
		roll       int
		prediction string
		target     int
		want       bool
	}{
		{"over wins above target", 51, model.PredictionOver, 50, true},
		{"over loses on target", 50, model.PredictionOver, 50, false},
		{"over loses below target", 49, model.PredictionOver, 50, false},
		{"under wins below target", 49, model.PredictionUnder, 50, true},
		{"under loses on target", 50, model.PredictionUnder, 50, false},
		{"under loses above target", 51, model.PredictionUnder, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := diceWin(tt.roll, tt.prediction, tt.target); got != tt.want {
				t.Errorf("diceWin(%d, %s, %d) = %v, want %v", tt.roll, tt.prediction, tt.target, got, tt.want)
			}
		})
	}
}

func TestRollDiceRange(t *testing.T) {
	s := &serv{rng: rand.New(rand.NewSource(1))}

	for i := 0; i < 1000; i++ {
		roll := s.rollDice()
		if roll < 1 || roll > 100 {
			t.Fatalf("rollDice() = %d, out of range 1..100", roll)
		}
	}
}

func TestPlayDiceOutcome(t *testing.T) {
	s := &serv{rng: rand.New(rand.NewSource(3))}

	req := testGameRequest(model.GameDice)
	req.Prediction = model.PredictionOver
	req.Target = 50

	for i := 0; i < 200; i++ {
		outcome, err := s.playDice(req)
		if err != nil {
			t.Fatalf("playDice() error = %v", err)
		}
		if outcome.Won != (outcome.Roll > 50) {
			t.Errorf("roll %d: won = %v", outcome.Roll, outcome.Won)
		}
		if outcome.Won && !outcome.Multiplier.Equal(decimal.NewFromInt(2)) {
			t.Errorf("winning multiplier = %s, want 2", outcome.Multiplier)
		}
		if !outcome.Won && !outcome.Multiplier.IsZero() {
			t.Errorf("losing multiplier = %s, want 0", outcome.Multiplier)
		}
	}
}
