package shooter

import (
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Label text and sizes.
const (
	MenuPrompt = "Press the mouse to begin..."
	LostBanner = "You Lost!"

	menuFontSize = 70
	lostFontSize = 60
	hudFontSize  = 50
	hudMargin    = 10
	bannerY      = 350
)

// Render draws the current frame.
func (g *Game) Render(dst core.Surface) {
	dst.Blit(g.art.Background, 0, 0)

	if g.session == nil {
		drawCentered(dst, MenuPrompt, menuFontSize, g.cfg.Field.Width, bannerY)
		return
	}
	g.session.Draw(dst)
}

// Draw renders the HUD, every enemy, the player, and the loss banner.
// Enemies go first so the player stays on top.
func (s *Session) Draw(dst core.Surface) {
	fieldW := s.cfg.Field.Width

	lives := dst.Text(fmt.Sprintf("Lives: %d", s.Lives), hudFontSize, core.ColorWhite)
	level := dst.Text(fmt.Sprintf("Level: %d", s.Level()), hudFontSize, core.ColorWhite)
	dst.BlitLabel(lives, hudMargin, hudMargin)
	dst.BlitLabel(level, fieldW-level.Width()-hudMargin, hudMargin)

	for _, e := range s.Enemies {
		e.Draw(dst)
	}
	s.Player.Draw(dst)

	if s.Lost {
		drawCentered(dst, LostBanner, lostFontSize, fieldW, bannerY)
	}
}

func drawCentered(dst core.Surface, text string, size, fieldW, y int) {
	l := dst.Text(text, size, core.ColorWhite)
	dst.BlitLabel(l, fieldW/2-l.Width()/2, y)
}
