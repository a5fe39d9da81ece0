package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/knotsaver/engine"
)

// Equal and Minus mirror the keypad keys for keyboards without one.
var keyBindings = map[ebiten.Key]engine.Command{
	ebiten.KeyF1:             engine.CommandToggleHelp,
	ebiten.KeyR:              engine.CommandRestart,
	ebiten.KeyP:              engine.CommandTogglePause,
	ebiten.KeyNumpadAdd:      engine.CommandMoreSamples,
	ebiten.KeyEqual:          engine.CommandMoreSamples,
	ebiten.KeyNumpadSubtract: engine.CommandFewerSamples,
	ebiten.KeyMinus:          engine.CommandFewerSamples,
	ebiten.KeyD:              engine.CommandRemoveLastPoint,
	ebiten.KeyN:              engine.CommandSelectNextCurve,
	ebiten.KeyDelete:         engine.CommandRemoveActiveCurve,
	ebiten.KeyA:              engine.CommandAddCurve,
	ebiten.KeyNumpadMultiply: engine.CommandSpeedUp,
	ebiten.KeyNumpadDivide:   engine.CommandSpeedDown,
}

func commandsFor(keys []ebiten.Key) []engine.Command {
	var cmds []engine.Command
	for _, key := range keys {
		if cmd, ok := keyBindings[key]; ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
