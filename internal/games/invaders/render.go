package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// sprite is a glyph in two sizes: wide for roomy screens, a single rune
// when a sprite would be narrower than three cells.
type sprite struct {
	wide   string
	narrow rune
	color  core.Color
}

// Alien sprites by row, bottom row first. Rows past the end reuse the last.
var alienSprites = []sprite{
	{"{W}", 'W', core.ColorGreen},
	{"{W}", 'W', core.ColorGreen},
	{"/M\\", 'M', core.ColorCyan},
	{"/M\\", 'M', core.ColorCyan},
	{"<O>", 'O', core.ColorMagenta},
}

var (
	cannonSprite     = sprite{"▟█▙", '▲', core.ColorBrightGreen}
	playerShotSprite = sprite{"│", '│', core.ColorBrightYellow}
	alienShotSprite  = sprite{"¦", '¦', core.ColorBrightRed}
)

const groundChar = '═'

// Render draws the current game state to the screen.
// Row 0 is the HUD; the playfield fills the remaining rows with world y
// flipped so that up is up.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawCenteredBox("SCREEN TOO SMALL", fmt.Sprintf("Need at least %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := newViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height())

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), groundChar)

	for a := range g.world.Actors() {
		switch actor := a.(type) {
		case *Alien:
			v.draw(dst, &actor.Body, alienSprites[min(actor.Row, len(alienSprites)-1)])
		case *Cannon:
			v.draw(dst, &actor.Body, cannonSprite)
		case *PlayerShot:
			v.draw(dst, &actor.Body, playerShotSprite)
		case *AlienShot:
			v.draw(dst, &actor.Body, alienShotSprite)
		}
	}

	g.drawHUD(dst)

	switch {
	case g.world.Halted():
		msg := g.board.message
		if msg == "" {
			msg = GameOverMessage
		}
		dst.DrawCenteredBox(msg, fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score()))
	case g.paused:
		dst.DrawCenteredBox("PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	score := fmt.Sprintf(" Score: %d ", g.board.score)
	dst.DrawTextColor(1, 0, score, core.ColorBrightYellow)

	wave := fmt.Sprintf(" Wave %d ", g.world.Wave())
	dst.DrawTextCentered(0, wave)

	lives := " " + g.board.livesText() + " "
	dst.DrawTextColor(dst.Width()-len(lives)-1, 0, lives, core.ColorBrightRed)
}

// viewport maps world coordinates onto screen cells.
type viewport struct {
	worldH         float64
	scaleX, scaleY float64
	top, bottom    int // first and last playfield rows
	width          int
}

func newViewport(worldW, worldH float64, screenW, screenH int) viewport {
	rows := screenH - 2 // HUD row and ground row
	return viewport{
		worldH: worldH,
		scaleX: float64(screenW) / worldW,
		scaleY: float64(rows) / worldH,
		top:    1,
		bottom: screenH - 2,
		width:  screenW,
	}
}

// cell returns the screen cell containing world point p.
func (v viewport) cell(p core.Vec2) (int, int) {
	x := int(p.X * v.scaleX)
	y := v.top + int((v.worldH-p.Y)*v.scaleY)
	return core.Clamp(x, 0, v.width-1), core.Clamp(y, v.top, v.bottom)
}

func (v viewport) draw(dst *core.Screen, b *Body, s sprite) {
	x, y := v.cell(b.Pos)
	halfW, _ := b.HalfExtents()
	if cells := int(2 * halfW * v.scaleX); cells >= len([]rune(s.wide)) {
		dst.DrawTextColor(x-len([]rune(s.wide))/2, y, s.wide, s.color)
		return
	}
	dst.SetColor(x, y, s.narrow, s.color)
}
