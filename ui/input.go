package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"simple-snake/game/types"
)

var keyMap = map[int32]types.Key{
	rl.KeyUp:    types.KeyUp,
	rl.KeyDown:  types.KeyDown,
	rl.KeyLeft:  types.KeyLeft,
	rl.KeyRight: types.KeyRight,
	rl.KeyW:     types.KeyUp,
	rl.KeyS:     types.KeyDown,
	rl.KeyA:     types.KeyLeft,
	rl.KeyD:     types.KeyRight,
}

// PollKeys drains raylib's key queue for this frame, in press order.
func PollKeys() []types.Key {
	var keys []types.Key
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		key, ok := keyMap[k]
		if !ok {
			key = types.KeyOther
		}
		keys = append(keys, key)
	}
	return keys
}
