package auth

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Login    string `json:"login"` // Логин или почта
	Password string `json:"password"`
}

type LoginResponse struct {
	ID          int     `json:"id"`
	Username    string  `json:"username"`
	Balance     float64 `json:"balance"`
	AccessToken string  `json:"access_token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResendVerificationRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}
