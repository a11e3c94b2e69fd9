package apperrors

import "errors"

var (
	ErrAuthenticationRequired = errors.New("not authenticated")
	ErrAuthorizationDenied    = errors.New("forbidden")
	ErrNotFound               = errors.New("not found")
	ErrConflict               = errors.New("already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrNotEnoughBalance       = errors.New("not enough balance")
	ErrMailDelivery           = errors.New("mail delivery failed")
)

// Validation - ошибка валидации входных данных с сообщением для клиента
type Validation struct {
	Msg string
}

func (e *Validation) Error() string {
	return e.Msg
}

func NewValidation(msg string) error {
	return &Validation{Msg: msg}
}

func IsValidation(err error) bool {
	var v *Validation
	return errors.As(err, &v)
}
