package game

import (
	"casino_app/internal/apperrors"
	"casino_app/internal/middleware"
	"casino_app/internal/model"
	"context"
)

func (s *serv) History(ctx context.Context) ([]model.GameHistory, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, apperrors.ErrAuthenticationRequired
	}

	return s.historyRepo.GetUserHistory(ctx, userID)
}
