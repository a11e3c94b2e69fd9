package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы игр
const (
	GameSlots = "slots"
	GameDice  = "dice"
	GameCrash = "crash"
)

// Предсказания для дайсов
const (
	PredictionOver  = "over"
	PredictionUnder = "under"
)

// GameRequest - входные данные одного раунда.
// Сервер сам разыгрывает исход, клиент передает только ставку и свои решения.
type GameRequest struct {
	GameType   string
	Bet        decimal.Decimal
	Prediction string          // dice: over | under
	Target     int             // dice: 1..98
	Cashout    decimal.Decimal // crash: автокэшаут, >= 1.00
}

// GameOutcome - разыгранный сервером исход раунда
type GameOutcome struct {
	GameType   string
	Grid       [3][3]string    // slots
	Roll       int             // dice: 1..100
	CrashPoint decimal.Decimal // crash
	Won        bool
	Multiplier decimal.Decimal // 0 при проигрыше
}

// GameHistory - запись истории. После вставки не изменяется
type GameHistory struct {
	ID         int
	UserID     int
	GameType   string
	BetAmount  decimal.Decimal
	Multiplier decimal.Decimal
	Payout     decimal.Decimal
	Timestamp  time.Time
}

// SettleResult - итог расчета раунда
type SettleResult struct {
	Balance decimal.Decimal
	History GameHistory
	Outcome GameOutcome
}

// GameSettings - настраиваемые параметры игры
type GameSettings struct {
	ID        int
	GameType  string
	RTP       decimal.Decimal
	HouseEdge decimal.Decimal
	MinBet    decimal.Decimal
	MaxBet    decimal.Decimal
	MaxPayout decimal.Decimal
	Settings  string // произвольный JSON с параметрами конкретной игры
	UpdatedAt time.Time
	UpdatedBy int
}
