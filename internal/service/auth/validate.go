package auth

import (
	"casino_app/internal/apperrors"
	"regexp"
	"strings"
	"unicode"
)

const gmailSuffix = "@gmail.com"

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Разрешенные спецсимволы пароля
const passwordSpecials = "!@#$%^&*"

func validateUsername(username string) error {
	if len(username) < 3 {
		return apperrors.NewValidation("Username must be at least 3 characters")
	}
	if !usernameRe.MatchString(username) {
		return apperrors.NewValidation("Username must contain only letters and numbers, no spaces or special characters")
	}
	return nil
}

func validateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return apperrors.NewValidation("Invalid email address")
	}
	if !strings.HasSuffix(email, gmailSuffix) {
		return apperrors.NewValidation("Only Gmail addresses are allowed")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return apperrors.NewValidation("Password must be at least 6 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		default:
			return apperrors.NewValidation("Password must contain at least one uppercase letter, one number, and one special character (!@#$%^&*)")
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return apperrors.NewValidation("Password must contain at least one uppercase letter, one number, and one special character (!@#$%^&*)")
	}

	return nil
}
