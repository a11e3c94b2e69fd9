package game

import "time"

type GameResultRequest struct {
	GameType  string  `json:"gameType"`
	BetAmount float64 `json:"betAmount"`

	// dice
	Prediction string `json:"prediction,omitempty"`
	Target     int    `json:"target,omitempty"`

	// crash: автокэшаут
	Cashout float64 `json:"cashout,omitempty"`
}

type GameResultResponse struct {
	Balance float64      `json:"balance"`
	History HistoryEntry `json:"history"`
	Outcome Outcome      `json:"outcome"`
}

type HistoryEntry struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	GameType   string    `json:"gameType"`
	BetAmount  float64   `json:"betAmount"`
	Multiplier float64   `json:"multiplier"`
	Payout     float64   `json:"payout"`
	Timestamp  time.Time `json:"timestamp"`
}

type Outcome struct {
	Grid       [][]string `json:"grid,omitempty"`       // slots
	Roll       int        `json:"roll,omitempty"`       // dice
	CrashPoint float64    `json:"crashPoint,omitempty"` // crash
	Won        bool       `json:"won"`
	Multiplier float64    `json:"multiplier"`
}
