package game

import "simple-snake/game/types"

// KeyPressed handles one key press. Directional keys turn and step the
// snake immediately unless they would reverse it. Other keys are ignored
// unless input.any_key_advances is set, in which case they force a step
// along the current heading.
func (g *Game) KeyPressed(key types.Key) {
	if g.state == types.GameOver {
		return
	}

	dir := key.Direction()
	if dir == types.None {
		if !g.anyKeyAdvances {
			return
		}
		dir = g.snake.HeadDirection()
	}

	if dir == g.snake.HeadDirection().Opposite() {
		g.logger.Debug("reversal ignored", "heading", g.snake.HeadDirection().String())
		return
	}

	g.updateSnake(dir)
}
