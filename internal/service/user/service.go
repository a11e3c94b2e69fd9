package user

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/middleware"
	"casino_app/internal/model"
	"casino_app/internal/repository"
	"casino_app/internal/service"
	"context"
)

type serv struct {
	userRepo repository.UserRepository
}

func NewService(userRepo repository.UserRepository) service.UserService {
	return &serv{userRepo: userRepo}
}

func (s *serv) Me(ctx context.Context) (*model.User, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, apperrors.ErrAuthenticationRequired
	}

	return s.userRepo.GetUser(ctx, userID)
}
