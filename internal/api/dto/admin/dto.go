package admin

import "time"

type GameSettingsResponse struct {
	ID        int       `json:"id"`
	GameType  string    `json:"gameType"`
	RTP       float64   `json:"rtp"`
	HouseEdge float64   `json:"houseEdge"`
	MinBet    float64   `json:"minBet"`
	MaxBet    float64   `json:"maxBet"`
	MaxPayout float64   `json:"maxPayout"`
	Settings  string    `json:"settings"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy int       `json:"updatedBy"`
}

type UpdateGameSettingsRequest struct {
	RTP       float64 `json:"rtp"`
	HouseEdge float64 `json:"houseEdge"`
	MinBet    float64 `json:"minBet"`
	MaxBet    float64 `json:"maxBet"`
	MaxPayout float64 `json:"maxPayout"`
	Settings  string  `json:"settings"`
}

type BanUserRequest struct {
	Reason string `json:"reason"`
}
