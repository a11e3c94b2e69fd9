package user

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/converter"
	"casino_app/internal/service"
	"casino_app/pkg/resp"
	"errors"
	"log"
	"net/http"
)

type HandlerDeps struct {
	Serv service.UserService
}

type Handler struct {
	serv service.UserService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.serv.Me(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthenticationRequired) || errors.Is(err, apperrors.ErrNotFound) {
			resp.WriteMessage(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		log.Println("Me error:", err)
		resp.WriteMessage(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMeResponse(*user))
}
