package types

// Direction represents a cardinal heading. The zero value None means
// "no override" wherever a Direction is optional.
type Direction int

const (
	None Direction = iota // 0
	Up                    // 1
	Right                 // 2
	Down                  // 3
	Left                  // 4
)

// ToPoint converts a Direction to a one-cell displacement vector
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse heading. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Key is a renderer-independent key press delivered to the input mapper.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Direction maps a key to a heading. Non-directional keys map to None.
func (k Key) Direction() Direction {
	switch k {
	case KeyUp:
		return Up
	case KeyDown:
		return Down
	case KeyLeft:
		return Left
	case KeyRight:
		return Right
	default:
		return None
	}
}
