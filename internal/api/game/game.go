package game

import (
	"casino_app/internal/apperrors"
	dto "casino_app/internal/api/dto/game"
	"casino_app/internal/converter"
	"casino_app/internal/service"
	"casino_app/pkg/req"
	"casino_app/pkg/resp"
	"errors"
	"log"
	"net/http"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Result разыгрывает раунд и проводит расчет по балансу
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GameResultRequest](r.Body)
	if err != nil {
		resp.WriteMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	result, err := h.serv.Play(r.Context(), converter.ToGameRequest(payload))
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			resp.WriteMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrNotEnoughBalance):
			resp.WriteMessage(w, http.StatusBadRequest, "Not enough balance")
		case errors.Is(err, apperrors.ErrAuthenticationRequired), errors.Is(err, apperrors.ErrNotFound):
			resp.WriteMessage(w, http.StatusUnauthorized, "Not authenticated")
		default:
			log.Println("Game result error:", err)
			resp.WriteMessage(w, http.StatusInternalServerError, "Failed to settle game result")
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResultResponse(*result))
}

// History возвращает историю раундов пользователя, новые первыми
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.serv.History(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthenticationRequired) {
			resp.WriteMessage(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		log.Println("Game history error:", err)
		resp.WriteMessage(w, http.StatusInternalServerError, "Failed to load game history")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryEntries(history))
}
