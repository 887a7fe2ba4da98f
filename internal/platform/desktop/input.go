package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// heldKeys are polled every tick; any pressed key holds its action.
var heldKeys = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
}

// readInput builds the input frame for the current tick. Movement and fire
// are level-triggered; confirm and quit are edge-triggered.
func readInput() core.InputFrame {
	f := core.NewInputFrame()
	for _, b := range heldKeys {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				f.Set(b.action)
				break
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		f.Set(core.ActionConfirm)
	}
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		f.Set(core.ActionQuit)
	}
	return f
}
