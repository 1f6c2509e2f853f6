package manager

import (
	"simple-snake/game/entity"
	"simple-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies a prospective head position. Walls are checked
// before the body.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if snake.Overlaps(pos.X, pos.Y) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position lies on or beyond the border ring
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Interior(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
