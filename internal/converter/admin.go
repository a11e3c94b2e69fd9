package converter

import (
	dtoAdmin "casino_app/internal/api/dto/admin"
	"casino_app/internal/model"

	"github.com/shopspring/decimal"
)

func ToGameSettingsResponse(settings model.GameSettings) dtoAdmin.GameSettingsResponse {
	return dtoAdmin.GameSettingsResponse{
		ID:        settings.ID,
		GameType:  settings.GameType,
		RTP:       settings.RTP.InexactFloat64(),
		HouseEdge: settings.HouseEdge.InexactFloat64(),
		MinBet:    settings.MinBet.InexactFloat64(),
		MaxBet:    settings.MaxBet.InexactFloat64(),
		MaxPayout: settings.MaxPayout.InexactFloat64(),
		Settings:  settings.Settings,
		UpdatedAt: settings.UpdatedAt,
		UpdatedBy: settings.UpdatedBy,
	}
}

func ToGameSettingsList(settings []model.GameSettings) []dtoAdmin.GameSettingsResponse {
	result := make([]dtoAdmin.GameSettingsResponse, len(settings))
	for i, s := range settings {
		result[i] = ToGameSettingsResponse(s)
	}
	return result
}

func ToGameSettingsModel(gameType string, req dtoAdmin.UpdateGameSettingsRequest) model.GameSettings {
	return model.GameSettings{
		GameType:  gameType,
		RTP:       decimal.NewFromFloat(req.RTP).Round(2),
		HouseEdge: decimal.NewFromFloat(req.HouseEdge).Round(2),
		MinBet:    decimal.NewFromFloat(req.MinBet).Round(2),
		MaxBet:    decimal.NewFromFloat(req.MaxBet).Round(2),
		MaxPayout: decimal.NewFromFloat(req.MaxPayout).Round(2),
		Settings:  req.Settings,
	}
}
