package entity

import (
	"simple-snake/game/types"
)

// Snake owns an ordered body of cells, head first.
type Snake struct {
	body      []types.Point
	direction types.Direction
	tail      types.Point // last cell dropped by MoveForward
	hasTail   bool
}

// NewSnake builds a three-cell horizontal snake whose tail sits at (x, y)
// and whose head sits at (x+2, y), heading right.
func NewSnake(x, y int) *Snake {
	body := make([]types.Point, 0, types.InitialSize)
	for i := types.InitialSize - 1; i >= 0; i-- {
		body = append(body, types.Point{X: x + i, Y: y})
	}
	return &Snake{
		body:      body,
		direction: types.Right,
	}
}

func (s *Snake) HeadPosition() types.Point {
	return s.body[0]
}

func (s *Snake) HeadDirection() types.Direction {
	return s.direction
}

// Len returns the number of cells in the body.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// NextHeadPosition returns where the head would land after one step
// along dir, or along the current heading when dir is None.
func (s *Snake) NextHeadPosition(dir types.Direction) types.Point {
	heading := s.direction
	if dir != types.None {
		heading = dir
	}
	return s.HeadPosition().Add(heading.ToPoint())
}

// MoveForward advances the body by one cell. Reversal checks are the
// caller's job.
func (s *Snake) MoveForward(dir types.Direction) {
	if dir != types.None {
		s.direction = dir
	}

	newHead := s.HeadPosition().Add(s.direction.ToPoint())
	last := len(s.body) - 1
	s.tail = s.body[last]
	s.hasTail = true

	// Shift in place: drop the tail, insert the new head at index 0.
	copy(s.body[1:], s.body[:last])
	s.body[0] = newHead
}

// RestoreTail appends the cell dropped by the last MoveForward, growing
// the body by one.
func (s *Snake) RestoreTail() {
	if !s.hasTail {
		return
	}
	s.body = append(s.body, s.tail)
	s.hasTail = false
}

// Overlaps reports whether (x, y) hits any cell except the tail, which is
// about to vacate its position.
func (s *Snake) Overlaps(x, y int) bool {
	p := types.Point{X: x, Y: y}
	for i := 0; i < len(s.body)-1; i++ {
		if s.body[i] == p {
			return true
		}
	}
	return false
}

// Occupies reports whether any cell of the body, tail included, is p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}
