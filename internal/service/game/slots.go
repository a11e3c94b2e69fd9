package game

import (
	"casino_app/internal/model"

	"github.com/shopspring/decimal"
)

// Размер игрового поля
const gridSize = 3

// Алфавит символов слота
var slotSymbols = []string{"cherry", "orange", "lemon", "grape", "diamond", "seven"}

// Множители линий по символу
var slotPayouts = map[string]int64{
	"cherry":  2,
	"orange":  3,
	"lemon":   4,
	"grape":   5,
	"diamond": 10,
	"seven":   20,
}

// generateSlotsGrid генерирует поле 3x3, каждая ячейка равновероятна по алфавиту
func (s *serv) generateSlotsGrid() [gridSize][gridSize]string {
	var grid [gridSize][gridSize]string
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			grid[r][c] = slotSymbols[s.intn(len(slotSymbols))]
		}
	}
	return grid
}

// slotsMultiplier считает суммарный множитель поля.
// Линия платит, когда все три символа совпали: 3 ряда и 2 диагонали,
// выигрыши линий складываются
func slotsMultiplier(grid [gridSize][gridSize]string) decimal.Decimal {
	var multiplier int64

	// Ряды
	for r := 0; r < gridSize; r++ {
		if grid[r][0] == grid[r][1] && grid[r][1] == grid[r][2] {
			multiplier += slotPayouts[grid[r][0]]
		}
	}

	// Диагонали
	if grid[0][0] == grid[1][1] && grid[1][1] == grid[2][2] {
		multiplier += slotPayouts[grid[0][0]]
	}
	if grid[0][2] == grid[1][1] && grid[1][1] == grid[2][0] {
		multiplier += slotPayouts[grid[0][2]]
	}

	return decimal.NewFromInt(multiplier)
}

func (s *serv) playSlots(req model.GameRequest) (*model.GameOutcome, error) {
	grid := s.generateSlotsGrid()
	multiplier := slotsMultiplier(grid)

	return &model.GameOutcome{
		GameType:   model.GameSlots,
		Grid:       grid,
		Won:        multiplier.IsPositive(),
		Multiplier: multiplier,
	}, nil
}
