package game

import (
	"casino_app/internal/repository"
	"casino_app/internal/service"
	"math/rand"
	"sync"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager    trm.Manager
	userRepo     repository.UserRepository
	historyRepo  repository.HistoryRepository
	settingsRepo repository.SettingsRepository

	// Серверный источник случайности. Клиентские исходы не принимаются
	rngMtx sync.Mutex
	rng    *rand.Rand
}

func NewGameService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	historyRepo repository.HistoryRepository,
	settingsRepo repository.SettingsRepository,
	rng *rand.Rand,
) service.GameService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &serv{
		txManager:    txManager,
		userRepo:     userRepo,
		historyRepo:  historyRepo,
		settingsRepo: settingsRepo,
		rng:          rng,
	}
}

func (s *serv) intn(n int) int {
	s.rngMtx.Lock()
	defer s.rngMtx.Unlock()
	return s.rng.Intn(n)
}

func (s *serv) float64() float64 {
	s.rngMtx.Lock()
	defer s.rngMtx.Unlock()
	return s.rng.Float64()
}
