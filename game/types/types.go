package types

// Point is a cell on the game grid, in grid (not pixel) coordinates.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Interior reports whether p lies strictly inside the grid. Cells on
// x == 0, y == 0 and beyond Width/Height belong to the border.
func (g Grid) Interior(p Point) bool {
	return p.X > 0 && p.Y > 0 && p.X < g.Width && p.Y < g.Height
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "unknown"
}

// GameState is the phase of the game state machine.
type GameState int

const (
	Running GameState = iota
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Game constants
const (
	MovingPeriod = 0.1 // Seconds between automatic forward steps
	RestartDelay = 1.0 // Idle seconds after game over before restart
	InitialSize  = 3   // Cells in a freshly spawned snake
)
