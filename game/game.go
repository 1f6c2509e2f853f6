package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"simple-snake/config"
	"simple-snake/game/entity"
	"simple-snake/game/manager"
	"simple-snake/game/types"
	"simple-snake/telemetry"
)

// RoundObserver is notified whenever a round ends in a collision.
type RoundObserver interface {
	ObserveRound(telemetry.RoundRecord)
}

// Game is the whole simulation state. It is owned by a single event loop
// and is not safe for concurrent use.
type Game struct {
	UUID string
	Grid types.Grid

	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager

	state         types.GameState
	waitingTime   float64
	lastCollision types.CollisionType

	movingPeriod   float64
	restartDelay   float64
	anyKeyAdvances bool
	start          types.Point
	restartFood    types.Point

	logger   *slog.Logger
	observer RoundObserver
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithRand sets the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.foodMgr = manager.NewFoodManager(g.Grid, rng)
	}
}

// WithSeed seeds the food placement source.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

func WithObserver(o RoundObserver) Option {
	return func(g *Game) {
		g.observer = o
	}
}

// WithSessionID overrides the generated session UUID.
func WithSessionID(id string) Option {
	return func(g *Game) {
		g.UUID = id
	}
}

// NewGame creates a running game with a fresh snake and food at the
// configured initial cell.
func NewGame(cfg *config.Config, opts ...Option) *Game {
	grid := cfg.GridSize()

	g := &Game{
		UUID:           uuid.New().String(),
		Grid:           grid,
		collisionMgr:   manager.NewCollisionManager(grid),
		stateMgr:       manager.NewStateManager(),
		movingPeriod:   cfg.Timing.MovingPeriod,
		restartDelay:   cfg.Timing.RestartDelay,
		anyKeyAdvances: cfg.Input.AnyKeyAdvances,
		start:          types.Point{X: cfg.Snake.StartX, Y: cfg.Snake.StartY},
		restartFood:    cfg.RestartFood(),
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.foodMgr == nil {
		g.foodMgr = manager.NewFoodManager(grid, rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
	}
	g.logger = g.logger.With("session", g.UUID)

	g.snake = entity.NewSnake(g.start.X, g.start.Y)
	g.foodMgr.SetFood(cfg.InitialFood())
	g.state = types.Running

	g.logger.Info("game started",
		"width", grid.Width,
		"height", grid.Height,
		"head", g.snake.HeadPosition(),
	)
	return g
}

// Update advances the simulation by dt seconds.
func (g *Game) Update(dt float64) {
	g.waitingTime += dt

	if g.state == types.GameOver {
		if g.waitingTime > g.restartDelay {
			g.Restart()
		}
		return
	}

	g.stateMgr.AddTime(dt)

	if !g.foodMgr.Exists() {
		food := g.foodMgr.PlaceFood(g.snake)
		g.logger.Debug("food placed", "x", food.X, "y", food.Y)
	}

	if g.waitingTime > g.movingPeriod {
		g.updateSnake(types.None)
	}
}

// updateSnake performs one movement step, turning to dir first unless dir
// is None. The timer is reset whether or not the step succeeds.
func (g *Game) updateSnake(dir types.Direction) {
	next := g.snake.NextHeadPosition(dir)

	if collision := g.collisionMgr.CheckCollision(next, g.snake); collision != types.NoCollision {
		g.endRound(collision, next)
	} else {
		g.snake.MoveForward(dir)
		g.stateMgr.RecordStep()
		g.checkEating()
	}
	g.waitingTime = 0
}

func (g *Game) checkEating() {
	food, ok := g.foodMgr.Food()
	if !ok || !g.collisionMgr.IsFoodCollision(g.snake.HeadPosition(), food) {
		return
	}
	g.foodMgr.Consume()
	g.snake.RestoreTail()
	g.stateMgr.RecordFood()
	g.logger.Debug("food eaten", "length", g.snake.Len())
}

func (g *Game) endRound(collision types.CollisionType, at types.Point) {
	g.state = types.GameOver
	g.lastCollision = collision
	g.stateMgr.EndRound(g.snake.Len())

	g.logger.Info("game over",
		"round", g.stateMgr.Round(),
		"cause", collision.String(),
		"x", at.X,
		"y", at.Y,
		"length", g.snake.Len(),
	)

	if g.observer != nil {
		g.observer.ObserveRound(telemetry.RoundRecord{
			SessionID: g.UUID,
			Round:     g.stateMgr.Round(),
			Length:    g.snake.Len(),
			FoodEaten: g.stateMgr.FoodEaten(),
			Steps:     g.stateMgr.Steps(),
			Duration:  g.stateMgr.Elapsed(),
			Cause:     collision.String(),
		})
	}
}

// Restart replaces the snake, puts food on the restart cell and resumes
// play.
func (g *Game) Restart() {
	g.snake = entity.NewSnake(g.start.X, g.start.Y)
	g.state = types.Running
	g.foodMgr.SetFood(g.restartFood)
	g.waitingTime = 0
	g.lastCollision = types.NoCollision
	g.stateMgr.NextRound()

	g.logger.Info("game restarted", "round", g.stateMgr.Round())
}

func (g *Game) IsGameOver() bool {
	return g.state == types.GameOver
}

func (g *Game) State() types.GameState {
	return g.state
}

// GetSnake exposes the snake for read-only inspection.
func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

// GetFood returns the food cell and whether food is present.
func (g *Game) GetFood() (types.Point, bool) {
	return g.foodMgr.Food()
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}
