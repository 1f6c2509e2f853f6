package game

import (
	"io"
	"log/slog"
	"testing"

	"simple-snake/config"
	"simple-snake/game/types"
	"simple-snake/telemetry"
)

// tick is comfortably longer than the default moving period.
const tick = 0.11

func newTestGame(t *testing.T, mutate func(*config.Config), opts ...Option) *Game {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if mutate != nil {
		mutate(cfg)
	}
	opts = append([]Option{
		WithSeed(1),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)
	return NewGame(cfg, opts...)
}

// grow puts food directly ahead of the head and steps onto it.
func grow(g *Game) {
	g.foodMgr.SetFood(g.snake.NextHeadPosition(types.None))
	g.Update(tick)
}

type roundSink struct {
	rounds []telemetry.RoundRecord
}

func (s *roundSink) ObserveRound(r telemetry.RoundRecord) {
	s.rounds = append(s.rounds, r)
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, nil)

	if g.IsGameOver() {
		t.Fatal("new game is over")
	}
	snap := g.Snapshot()
	if snap.Length() != 3 {
		t.Errorf("Length() = %d, want 3", snap.Length())
	}
	if snap.Body[0] != (types.Point{X: 4, Y: 2}) {
		t.Errorf("head = %v, want (4,2)", snap.Body[0])
	}
	if !snap.HasFood || snap.Food != (types.Point{X: 6, Y: 4}) {
		t.Errorf("food = %v (present %v), want (6,4)", snap.Food, snap.HasFood)
	}
	if snap.Grid != (types.Grid{Width: 30, Height: 30}) {
		t.Errorf("grid = %v, want 30x30", snap.Grid)
	}
	if snap.Round != 1 {
		t.Errorf("round = %d, want 1", snap.Round)
	}
}

func TestUpdateWaitsForMovingPeriod(t *testing.T) {
	g := newTestGame(t, nil)

	g.Update(0.05)
	if g.GetSnake().HeadPosition() != (types.Point{X: 4, Y: 2}) {
		t.Fatalf("moved before the moving period elapsed")
	}

	g.Update(0.06)
	if got := g.GetSnake().HeadPosition(); got != (types.Point{X: 5, Y: 2}) {
		t.Fatalf("head = %v, want (5,2)", got)
	}
	if g.waitingTime != 0 {
		t.Errorf("waitingTime = %v, want 0 after a step", g.waitingTime)
	}
}

func TestReversalIgnored(t *testing.T) {
	g := newTestGame(t, nil)
	before := g.GetSnake().HeadPosition()

	g.KeyPressed(types.KeyLeft)

	if g.GetSnake().HeadPosition() != before {
		t.Errorf("head moved to %v on a reversal", g.GetSnake().HeadPosition())
	}
	if g.GetSnake().HeadDirection() != types.Right {
		t.Errorf("heading = %v, want right", g.GetSnake().HeadDirection())
	}
}

func TestKeyPressMovesImmediately(t *testing.T) {
	g := newTestGame(t, nil)
	g.waitingTime = 0.05

	g.KeyPressed(types.KeyDown)

	if got := g.GetSnake().HeadPosition(); got != (types.Point{X: 4, Y: 3}) {
		t.Errorf("head = %v, want (4,3)", got)
	}
	if g.GetSnake().HeadDirection() != types.Down {
		t.Errorf("heading = %v, want down", g.GetSnake().HeadDirection())
	}
	if g.waitingTime != 0 {
		t.Errorf("waitingTime = %v, want 0", g.waitingTime)
	}

	// Same heading is not a reversal.
	g.KeyPressed(types.KeyDown)
	if got := g.GetSnake().HeadPosition(); got != (types.Point{X: 4, Y: 4}) {
		t.Errorf("head = %v, want (4,4)", got)
	}
}

func TestNonDirectionalKey(t *testing.T) {
	tests := []struct {
		name     string
		anyKey   bool
		wantHead types.Point
	}{
		{"ignored by default", false, types.Point{X: 4, Y: 2}},
		{"advances when enabled", true, types.Point{X: 5, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, func(c *config.Config) { c.Input.AnyKeyAdvances = tt.anyKey })
			g.KeyPressed(types.KeyOther)
			if got := g.GetSnake().HeadPosition(); got != tt.wantHead {
				t.Errorf("head = %v, want %v", got, tt.wantHead)
			}
			if g.GetSnake().HeadDirection() != types.Right {
				t.Errorf("heading = %v, want right", g.GetSnake().HeadDirection())
			}
		})
	}
}

func TestTopWallEndsGame(t *testing.T) {
	g := newTestGame(t, nil)

	g.KeyPressed(types.KeyUp) // (4,1)
	if g.IsGameOver() {
		t.Fatal("row 1 is playable")
	}

	g.KeyPressed(types.KeyUp) // (4,0) is the border
	if !g.IsGameOver() {
		t.Fatal("moving onto y == 0 did not end the game")
	}
	if got := g.GetSnake().HeadPosition(); got != (types.Point{X: 4, Y: 1}) {
		t.Errorf("head = %v, want (4,1): the fatal step must not move", got)
	}
	if g.Snapshot().LastCollision != types.WallCollision {
		t.Errorf("LastCollision = %v, want wall", g.Snapshot().LastCollision)
	}
}

func TestRightWallEndsGame(t *testing.T) {
	g := newTestGame(t, nil)

	for i := 0; i < 25; i++ {
		g.Update(tick)
	}
	if g.IsGameOver() {
		t.Fatal("game over before reaching x == 29")
	}
	if got := g.GetSnake().HeadPosition(); got != (types.Point{X: 29, Y: 2}) {
		t.Fatalf("head = %v, want (29,2)", got)
	}

	g.Update(tick)
	if !g.IsGameOver() {
		t.Fatal("moving onto x == width did not end the game")
	}
}

func TestEatingGrowsSnake(t *testing.T) {
	g := newTestGame(t, nil)

	g.KeyPressed(types.KeyDown)  // (4,3)
	g.KeyPressed(types.KeyDown)  // (4,4)
	g.KeyPressed(types.KeyRight) // (5,4)
	if g.GetSnake().Len() != 3 {
		t.Fatalf("Len() = %d before eating, want 3", g.GetSnake().Len())
	}

	g.KeyPressed(types.KeyRight) // (6,4) has the food
	if _, ok := g.GetFood(); ok {
		t.Error("food still present after being eaten")
	}
	if g.GetSnake().Len() != 4 {
		t.Errorf("Len() = %d, want 4", g.GetSnake().Len())
	}
	if g.GetStateManager().FoodEaten() != 1 {
		t.Errorf("FoodEaten() = %d, want 1", g.GetStateManager().FoodEaten())
	}

	// The next tick places fresh food off the snake.
	g.Update(0.01)
	food, ok := g.GetFood()
	if !ok {
		t.Fatal("no food placed on the next tick")
	}
	if g.GetSnake().Occupies(food) {
		t.Errorf("food %v placed on the snake", food)
	}
	if food.X < 1 || food.X >= 29 || food.Y < 1 || food.Y >= 29 {
		t.Errorf("food %v outside the interior", food)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, nil)
	grow(g)
	grow(g) // length 5, head (6,2)

	g.KeyPressed(types.KeyDown) // (6,3)
	g.KeyPressed(types.KeyLeft) // (5,3)
	g.KeyPressed(types.KeyUp)   // (5,2) is body, not the tail

	if !g.IsGameOver() {
		t.Fatal("turning into the body did not end the game")
	}
	if g.Snapshot().LastCollision != types.SelfCollision {
		t.Errorf("LastCollision = %v, want self", g.Snapshot().LastCollision)
	}
}

func TestEnteringVacatingTailIsSafe(t *testing.T) {
	g := newTestGame(t, nil)
	grow(g) // length 4, head (5,2)

	g.KeyPressed(types.KeyDown) // (5,3)
	g.KeyPressed(types.KeyLeft) // (4,3)
	g.KeyPressed(types.KeyUp)   // (4,2) is the tail

	if g.IsGameOver() {
		t.Fatal("entering the vacating tail cell ended the game")
	}
	if got := g.GetSnake().HeadPosition(); got != (types.Point{X: 4, Y: 2}) {
		t.Errorf("head = %v, want (4,2)", got)
	}
}

func TestGameOverIgnoresInputAndRestarts(t *testing.T) {
	g := newTestGame(t, nil)
	g.KeyPressed(types.KeyUp)
	g.KeyPressed(types.KeyUp)
	if !g.IsGameOver() {
		t.Fatal("setup: expected game over")
	}
	frozen := g.Snapshot()

	g.KeyPressed(types.KeyLeft)
	g.KeyPressed(types.KeyRight)
	g.Update(0.5)
	if !g.IsGameOver() {
		t.Fatal("restarted before the restart delay")
	}
	if got := g.GetSnake().HeadPosition(); got != frozen.Body[0] {
		t.Fatalf("snake moved during game over: %v -> %v", frozen.Body[0], got)
	}

	g.Update(0.6)
	if g.IsGameOver() {
		t.Fatal("not restarted after the restart delay")
	}
	snap := g.Snapshot()
	if snap.Length() != 3 || snap.Body[0] != (types.Point{X: 4, Y: 2}) {
		t.Errorf("restarted body = %v, want fresh 3-cell snake", snap.Body)
	}
	if snap.Direction != types.Right {
		t.Errorf("restarted heading = %v, want right", snap.Direction)
	}
	if !snap.HasFood || snap.Food != (types.Point{X: 5, Y: 5}) {
		t.Errorf("restart food = %v (present %v), want (5,5)", snap.Food, snap.HasFood)
	}
	if snap.Round != 2 {
		t.Errorf("round = %d, want 2", snap.Round)
	}
	if g.waitingTime != 0 {
		t.Errorf("waitingTime = %v, want 0", g.waitingTime)
	}
}

func TestRoundObserver(t *testing.T) {
	sink := &roundSink{}
	g := newTestGame(t, nil, WithObserver(sink), WithSessionID("test-session"))

	g.Update(tick)            // (5,2)
	g.KeyPressed(types.KeyUp) // (5,1)
	g.KeyPressed(types.KeyUp) // wall

	if len(sink.rounds) != 1 {
		t.Fatalf("observer saw %d rounds, want 1", len(sink.rounds))
	}
	r := sink.rounds[0]
	if r.SessionID != "test-session" || r.Round != 1 || r.Length != 3 || r.Steps != 2 || r.Cause != "wall" {
		t.Errorf("record = %+v", r)
	}
	if r.Duration != tick {
		t.Errorf("Duration = %v, want %v", r.Duration, tick)
	}
	if g.GetStateManager().GetHighScore() != 3 {
		t.Errorf("GetHighScore() = %d, want 3", g.GetStateManager().GetHighScore())
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g := newTestGame(t, nil)
	snap := g.Snapshot()
	snap.Body[0] = types.Point{X: 20, Y: 20}

	if g.GetSnake().HeadPosition() == snap.Body[0] {
		t.Error("mutating a snapshot changed the game")
	}
}
