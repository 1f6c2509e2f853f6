package game

import "simple-snake/game/types"

// Snapshot is a read-only copy of everything a renderer needs for one
// frame.
type Snapshot struct {
	Grid          types.Grid
	Body          []types.Point // Head first
	Direction     types.Direction
	Food          types.Point
	HasFood       bool
	GameOver      bool
	Round         int
	BestLength    int
	LastCollision types.CollisionType
}

// Snapshot returns the current state. The Body slice is a copy.
func (g *Game) Snapshot() Snapshot {
	food, hasFood := g.foodMgr.Food()
	return Snapshot{
		Grid:          g.Grid,
		Body:          g.snake.Body(),
		Direction:     g.snake.HeadDirection(),
		Food:          food,
		HasFood:       hasFood,
		GameOver:      g.state == types.GameOver,
		Round:         g.stateMgr.Round(),
		BestLength:    g.stateMgr.GetHighScore(),
		LastCollision: g.lastCollision,
	}
}

// Length returns the number of snake cells in the snapshot.
func (s Snapshot) Length() int {
	return len(s.Body)
}
