package converter

import (
	dtoAuth "casino_app/internal/api/dto/auth"
	dtoUser "casino_app/internal/api/dto/user"
	"casino_app/internal/model"
)

func ToLoginResponse(data model.AuthData) dtoAuth.LoginResponse {
	return dtoAuth.LoginResponse{
		ID:          data.UserID,
		Username:    data.Username,
		Balance:     data.Balance.InexactFloat64(),
		AccessToken: data.AccessToken,
	}
}

func ToMeResponse(user model.User) dtoUser.MeResponse {
	return dtoUser.MeResponse{
		ID:       user.ID,
		Username: user.Username,
		Balance:  user.Balance.InexactFloat64(),
	}
}
