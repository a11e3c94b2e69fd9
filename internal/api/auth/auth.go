package auth

import (
	"casino_app/internal/apperrors"
	dto "casino_app/internal/api/dto/auth"
	"casino_app/internal/converter"
	"casino_app/internal/middleware"
	"casino_app/internal/service"
	"casino_app/pkg/req"
	"casino_app/pkg/resp"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv       service.AuthService
	SessionTTL time.Duration
}

type Handler struct {
	serv       service.AuthService
	sessionTTL time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:       deps.Serv,
		sessionTTL: deps.SessionTTL,
	}
}

// Register создает пользователя и отправляет письмо подтверждения почты
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	_, mailSent, err := h.serv.Register(r.Context(), requestBody.Username, requestBody.Email, requestBody.Password)
	if err != nil {
		if apperrors.IsValidation(err) {
			resp.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			resp.WriteMessage(w, http.StatusBadRequest, "Username already taken")
			return
		}
		log.Println("Register error:", err)
		resp.WriteMessage(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	if !mailSent {
		resp.WriteMessage(w, http.StatusCreated,
			"Registration successful but verification email could not be sent. Please contact support.")
		return
	}

	resp.WriteMessage(w, http.StatusCreated,
		"Registration successful. Please check your email to verify your account.")
}

// Verify подтверждает почту по токену из письма
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	verificationToken := chi.URLParam(r, "token")

	_, err := h.serv.VerifyEmail(r.Context(), verificationToken)
	if err != nil {
		log.Println("Verification error:", err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(verificationFailedPage))
		return
	}

	http.Redirect(w, r, "/auth?verified=true", http.StatusFound)
}

// Login проверяет учетные данные, открывает сессию
// и возвращает session_id через cookie
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Login, requestBody.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			resp.WriteMessage(w, http.StatusUnauthorized, "User not found")
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			resp.WriteMessage(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, apperrors.ErrEmailNotVerified):
			resp.WriteMessage(w, http.StatusUnauthorized, "Please verify your email first")
		case errors.Is(err, apperrors.ErrAuthorizationDenied):
			resp.WriteMessage(w, http.StatusForbidden, "Account is banned")
		default:
			log.Println("Login error:", err)
			resp.WriteMessage(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	h.setSessionIDCookie(w, data.SessionID)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLoginResponse(*data))
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(middleware.SessionCookieName)
	if err == nil {
		if err := h.serv.Logout(r.Context(), c.Value); err != nil {
			log.Println("Logout error:", err)
		}
	}

	deleteSessionIDCookie(w)

	resp.WriteMessage(w, http.StatusOK, "Logged out")
}

// ForgotPassword отправляет письмо со ссылкой сброса пароля.
// Ответ одинаковый для существующей и несуществующей почты
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.ForgotPasswordRequest](r.Body)
	if err != nil || requestBody.Email == "" {
		resp.WriteMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.serv.ForgotPassword(r.Context(), requestBody.Email); err != nil {
		log.Println("Forgot password error:", err)
		resp.WriteMessage(w, http.StatusInternalServerError, "Failed to send reset link")
		return
	}

	resp.WriteMessage(w, http.StatusOK, "If your email is registered, you will receive a password reset link")
}

// ResetPassword меняет пароль по токену сброса
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	resetToken := chi.URLParam(r, "token")

	requestBody, err := req.Decode[dto.ResetPasswordRequest](r.Body)
	if err != nil || requestBody.Password == "" {
		resp.WriteMessage(w, http.StatusBadRequest, "Password is required")
		return
	}

	err = h.serv.ResetPassword(r.Context(), resetToken, requestBody.Password)
	if err != nil {
		if apperrors.IsValidation(err) {
			resp.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			resp.WriteMessage(w, http.StatusBadRequest, "Invalid or expired reset token")
			return
		}
		log.Println("Reset password error:", err)
		resp.WriteMessage(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	resp.WriteMessage(w, http.StatusOK, "Password has been reset successfully")
}

// ResendVerification повторно отправляет письмо подтверждения.
// Ответ одинаковый для существующей и несуществующей почты
func (h *Handler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.ResendVerificationRequest](r.Body)
	if err != nil || requestBody.Email == "" {
		resp.WriteMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	err = h.serv.ResendVerification(r.Context(), requestBody.Email)
	if err != nil {
		if apperrors.IsValidation(err) {
			resp.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Resend verification error:", err)
		resp.WriteMessage(w, http.StatusInternalServerError, "Failed to resend verification email")
		return
	}

	resp.WriteMessage(w, http.StatusOK, "If your email is registered, you will receive a verification link")
}

// setSessionIDCookie устанавливает cookie с session_id
func (h *Handler) setSessionIDCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.sessionTTL.Seconds()),
	})
}

// deleteSessionIDCookie удаляет cookie с session_id
func deleteSessionIDCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

const verificationFailedPage = `<html>
  <head><title>Verification Failed</title></head>
  <body>
    <h1>Verification Failed</h1>
    <p>Invalid or expired verification token.</p>
    <a href="/auth">Return to login page</a>
  </body>
</html>`
