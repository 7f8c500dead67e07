package joypad

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Default keyboard layout.
var keyBindings = []struct {
	key    ebiten.Key
	button Button
}{
	{ebiten.KeyA, A},
	{ebiten.KeyB, B},
	{ebiten.KeySpace, Select},
	{ebiten.KeyEnter, Start},
	{ebiten.KeyUp, Up},
	{ebiten.KeyDown, Down},
	{ebiten.KeyLeft, Left},
	{ebiten.KeyRight, Right},
}

// Poll samples the keyboard into the button byte. The host calls this
// from its per-frame callback, between instructions.
func (j *Joypad) Poll() {
	for _, kb := range keyBindings {
		if ebiten.IsKeyPressed(kb.key) {
			j.Press(kb.button)
		} else {
			j.Release(kb.button)
		}
	}
}
