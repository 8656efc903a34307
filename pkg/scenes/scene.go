package scenes

import (
	"github.com/gonewx/escalator/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ Scene          = (*EscalatorScene)(nil)
	_ game.Resizable = (*EscalatorScene)(nil)
)
