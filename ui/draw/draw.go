// Package draw converts grid coordinates to pixel rectangles. It has no
// graphics dependency so the geometry can be tested headless.
package draw

// Rect is a pixel rectangle.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Adapter maps grid cells to pixels for a fixed block size.
type Adapter struct {
	BlockSize float32
}

func NewAdapter(blockSize int) Adapter {
	return Adapter{BlockSize: float32(blockSize)}
}

// ToCoordinate converts a grid coordinate to pixels.
func (a Adapter) ToCoordinate(c int) float32 {
	return float32(c) * a.BlockSize
}

// Block returns the rectangle covering the cell at (x, y).
func (a Adapter) Block(x, y int) Rect {
	return a.Area(x, y, 1, 1)
}

// Area returns the rectangle covering w x h cells starting at (x, y).
func (a Adapter) Area(x, y, w, h int) Rect {
	return Rect{
		X:      a.ToCoordinate(x),
		Y:      a.ToCoordinate(y),
		Width:  a.BlockSize * float32(w),
		Height: a.BlockSize * float32(h),
	}
}

// Border returns the four one-cell strips along the edges of a
// width x height grid: top, bottom, left, right.
func (a Adapter) Border(width, height int) [4]Rect {
	return [4]Rect{
		a.Area(0, 0, width, 1),
		a.Area(0, height-1, width, 1),
		a.Area(0, 0, 1, height),
		a.Area(width-1, 0, 1, height),
	}
}
