package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"simple-snake/game"
	"simple-snake/game/types"
	"simple-snake/ui/draw"
)

var (
	backgroundColor = rl.NewColor(128, 128, 128, 255)
	snakeColor      = rl.NewColor(0, 77, 0, 255)
	headColor       = rl.NewColor(0, 110, 0, 255)
	foodColor       = rl.NewColor(204, 0, 0, 255)
	borderColor     = rl.NewColor(0, 0, 0, 255)
	gameOverColor   = rl.NewColor(230, 0, 0, 128)
)

// Renderer draws game snapshots with raylib.
type Renderer struct {
	adapter  draw.Adapter
	fontSize int32
}

func NewRenderer(blockSize int) *Renderer {
	return &Renderer{
		adapter:  draw.NewAdapter(blockSize),
		fontSize: int32(blockSize) * 4 / 5,
	}
}

func toRaylib(r draw.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Draw renders one frame.
func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	for i, p := range snap.Body {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		rl.DrawRectangleRec(toRaylib(r.adapter.Block(p.X, p.Y)), color)
	}
	if len(snap.Body) > 0 {
		r.drawHeading(snap.Body[0], snap.Direction)
	}

	if snap.HasFood {
		rl.DrawRectangleRec(toRaylib(r.adapter.Block(snap.Food.X, snap.Food.Y)), foodColor)
	}

	for _, strip := range r.adapter.Border(snap.Grid.Width, snap.Grid.Height) {
		rl.DrawRectangleRec(toRaylib(strip), borderColor)
	}

	label := fmt.Sprintf("Round %d  Length %d  Best %d", snap.Round, snap.Length(), snap.BestLength)
	rl.DrawText(label, int32(r.adapter.BlockSize)+4, 4, r.fontSize, rl.White)

	if snap.GameOver {
		rl.DrawRectangleRec(toRaylib(r.adapter.Area(0, 0, snap.Grid.Width, snap.Grid.Height)), gameOverColor)
		text := fmt.Sprintf("Game Over (%s)", snap.LastCollision)
		w := rl.MeasureText(text, r.fontSize*2)
		rl.DrawText(text,
			int32(r.adapter.ToCoordinate(snap.Grid.Width))/2-w/2,
			int32(r.adapter.ToCoordinate(snap.Grid.Height))/2-r.fontSize,
			r.fontSize*2, rl.White)
	}

	rl.EndDrawing()
}

// drawHeading draws a small triangle on the head pointing along dir.
func (r *Renderer) drawHeading(head types.Point, dir types.Direction) {
	cell := r.adapter.Block(head.X, head.Y)
	half := cell.Width / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: cell.X + cell.Width, Y: cell.Y + half}
		b = rl.Vector2{X: cell.X + half, Y: cell.Y}
		c = rl.Vector2{X: cell.X + half, Y: cell.Y + cell.Height}
	case types.Left:
		a = rl.Vector2{X: cell.X, Y: cell.Y + half}
		b = rl.Vector2{X: cell.X + half, Y: cell.Y + cell.Height}
		c = rl.Vector2{X: cell.X + half, Y: cell.Y}
	case types.Down:
		a = rl.Vector2{X: cell.X + half, Y: cell.Y + cell.Height}
		b = rl.Vector2{X: cell.X + cell.Width, Y: cell.Y + half}
		c = rl.Vector2{X: cell.X, Y: cell.Y + half}
	case types.Up:
		a = rl.Vector2{X: cell.X + half, Y: cell.Y}
		b = rl.Vector2{X: cell.X, Y: cell.Y + half}
		c = rl.Vector2{X: cell.X + cell.Width, Y: cell.Y + half}
	default:
		return
	}
	// raylib expects counter-clockwise vertex order
	rl.DrawTriangle(a, b, c, rl.Yellow)
}
