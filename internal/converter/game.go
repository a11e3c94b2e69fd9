package converter

import (
	"casino_app/internal/api/dto/game"
	"casino_app/internal/model"

	"github.com/shopspring/decimal"
)

func ToGameRequest(req game.GameResultRequest) model.GameRequest {
	return model.GameRequest{
		GameType:   req.GameType,
		Bet:        decimal.NewFromFloat(req.BetAmount).Round(2),
		Prediction: req.Prediction,
		Target:     req.Target,
		Cashout:    decimal.NewFromFloat(req.Cashout).Round(2),
	}
}

func ToGameResultResponse(res model.SettleResult) game.GameResultResponse {
	return game.GameResultResponse{
		Balance: res.Balance.InexactFloat64(),
		History: ToHistoryEntry(res.History),
		Outcome: toOutcome(res.Outcome),
	}
}

func ToHistoryEntry(entry model.GameHistory) game.HistoryEntry {
	return game.HistoryEntry{
		ID:         entry.ID,
		UserID:     entry.UserID,
		GameType:   entry.GameType,
		BetAmount:  entry.BetAmount.InexactFloat64(),
		Multiplier: entry.Multiplier.InexactFloat64(),
		Payout:     entry.Payout.InexactFloat64(),
		Timestamp:  entry.Timestamp,
	}
}

func ToHistoryEntries(entries []model.GameHistory) []game.HistoryEntry {
	result := make([]game.HistoryEntry, len(entries))
	for i, entry := range entries {
		result[i] = ToHistoryEntry(entry)
	}
	return result
}

func toOutcome(outcome model.GameOutcome) game.Outcome {
	out := game.Outcome{
		Roll:       outcome.Roll,
		CrashPoint: outcome.CrashPoint.InexactFloat64(),
		Won:        outcome.Won,
		Multiplier: outcome.Multiplier.InexactFloat64(),
	}

	if outcome.GameType == model.GameSlots {
		grid := make([][]string, len(outcome.Grid))
		for r := range outcome.Grid {
			row := make([]string, len(outcome.Grid[r]))
			copy(row, outcome.Grid[r][:])
			grid[r] = row
		}
		out.Grid = grid
	}

	return out
}
