package admin

import (
	"casino_app/internal/apperrors"
	dto "casino_app/internal/api/dto/admin"
	"casino_app/internal/converter"
	"casino_app/internal/service"
	"casino_app/pkg/req"
	"casino_app/pkg/resp"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.AdminService
}

type Handler struct {
	serv service.AdminService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) ListGameSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.serv.ListGameSettings(r.Context())
	if err != nil {
		log.Println("List game settings error:", err)
		resp.WriteMessage(w, http.StatusInternalServerError, "Failed to load game settings")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameSettingsList(settings))
}

func (h *Handler) UpdateGameSettings(w http.ResponseWriter, r *http.Request) {
	gameType := chi.URLParam(r, "gameType")

	payload, err := req.Decode[dto.UpdateGameSettingsRequest](r.Body)
	if err != nil {
		resp.WriteMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	settings := converter.ToGameSettingsModel(gameType, payload)
	updated, err := h.serv.UpdateGameSettings(r.Context(), &settings)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			resp.WriteMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrNotFound):
			resp.WriteMessage(w, http.StatusNotFound, "Unknown game type")
		default:
			log.Println("Update game settings error:", err)
			resp.WriteMessage(w, http.StatusInternalServerError, "Failed to update game settings")
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameSettingsResponse(*updated))
}

func (h *Handler) BanUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		resp.WriteMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	payload, err := req.Decode[dto.BanUserRequest](r.Body)
	if err != nil {
		resp.WriteMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := h.serv.BanUser(r.Context(), userID, payload.Reason); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			resp.WriteMessage(w, http.StatusNotFound, "User not found")
			return
		}
		log.Println("Ban user error:", err)
		resp.WriteMessage(w, http.StatusInternalServerError, "Failed to ban user")
		return
	}

	resp.WriteMessage(w, http.StatusOK, "User banned")
}

func (h *Handler) UnbanUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		resp.WriteMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.serv.UnbanUser(r.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			resp.WriteMessage(w, http.StatusNotFound, "User not found")
			return
		}
		log.Println("Unban user error:", err)
		resp.WriteMessage(w, http.StatusInternalServerError, "Failed to unban user")
		return
	}

	resp.WriteMessage(w, http.StatusOK, "User unbanned")
}
