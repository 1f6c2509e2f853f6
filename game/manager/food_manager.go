package manager

import (
	"simple-snake/game/entity"
	"simple-snake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager tracks the single food cell and places new food.
type FoodManager struct {
	grid   types.Grid
	rng    *rand.Rand
	food   types.Point
	exists bool
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Food returns the food cell and whether food is present.
func (fm *FoodManager) Food() (types.Point, bool) {
	return fm.food, fm.exists
}

// Exists reports whether food is currently on the board.
func (fm *FoodManager) Exists() bool {
	return fm.exists
}

// SetFood puts food at p.
func (fm *FoodManager) SetFood(p types.Point) {
	fm.food = p
	fm.exists = true
}

// Consume clears the food.
func (fm *FoodManager) Consume() {
	fm.exists = false
}

// PlaceFood puts food on a random interior cell not occupied by the snake
// and returns it.
func (fm *FoodManager) PlaceFood(snake *entity.Snake) types.Point {
	food := fm.GenerateFood(snake)
	fm.SetFood(food)
	return food
}

// GenerateFood draws x in [1, Width-1) and y in [1, Height-1), resampling
// until the cell is free. It does not terminate on a board the snake fills.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	for {
		food := types.Point{
			X: 1 + fm.rng.Intn(fm.grid.Width-2),
			Y: 1 + fm.rng.Intn(fm.grid.Height-2),
		}

		if !snake.Occupies(food) {
			return food
		}
	}
}
