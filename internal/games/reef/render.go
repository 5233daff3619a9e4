package reef

import (
	"fmt"
	"math"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
)

// Visual characters for rendering
const (
	WaterChar   = '~'
	SandChar    = '▓'
	SandDeep    = '░'
	SeaweedA    = '}'
	SeaweedB    = '{'
	FishBody    = '█'
	FishTail    = '<'
	FishEye     = 'o'
	FishDeadEye = 'x'
	SharkBody   = '▓'
	SharkHead   = '◀'
	SharkFin    = '▲'
	OctoHead    = '●'
	JellyBell   = '∩'
	BubbleSmall = '°'
	BubbleLarge = 'o'
)

// ScreenRenderer draws frames into a character Screen, scaling the canvas
// to the screen size.
type ScreenRenderer struct {
	screen *core.Screen
	cfg    config.ReefConfig
}

// NewScreenRenderer creates a renderer drawing into dst.
func NewScreenRenderer(dst *core.Screen, cfg config.ReefConfig) *ScreenRenderer {
	return &ScreenRenderer{screen: dst, cfg: cfg}
}

// Screen returns the target buffer.
func (r *ScreenRenderer) Screen() *core.Screen { return r.screen }

// Render draws v. It only reads from v.
func (r *ScreenRenderer) Render(v View) {
	dst := r.screen
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	r.drawWater(dst)
	for _, p := range v.Particles {
		r.drawBubble(dst, p)
	}
	r.drawGround(dst, v.State.ScrollOffset)
	for _, o := range v.Obstacles {
		r.drawObstacle(dst, o)
	}
	r.drawPlayer(dst, v.Player)
	r.drawHUD(dst, v.State)

	switch v.State.Phase {
	case PhaseMenu:
		r.drawMessage(dst, "UNDERWATER ADVENTURE", "SPACE TO SWIM UP   DOWN TO DIVE")
	case PhaseGameOver:
		r.drawMessage(dst, "EATEN BY SEA MONSTER!",
			fmt.Sprintf("SCORE %05d   SPACE TO SWIM AGAIN", int(math.Floor(v.State.Score))))
	}
}

// cellX maps a canvas x coordinate to a column.
func (r *ScreenRenderer) cellX(x float64) int {
	return int(math.Floor(x * float64(r.screen.Width()) / r.cfg.Canvas.Width))
}

// cellY maps a canvas y coordinate to a row.
func (r *ScreenRenderer) cellY(y float64) int {
	return int(math.Floor(y * float64(r.screen.Height()) / r.cfg.Canvas.Height))
}

// cellRect maps a canvas box to a cell rectangle at least one cell in size.
func (r *ScreenRenderer) cellRect(b core.Box) core.Rect {
	x0, y0 := r.cellX(b.X), r.cellY(b.Y)
	x1, y1 := r.cellX(b.Right()), r.cellY(b.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (r *ScreenRenderer) drawWater(dst *core.Screen) {
	surface := r.cellY(15)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, surface, WaterChar, core.ColorCyan)
	}
}

func (r *ScreenRenderer) drawBubble(dst *core.Screen, p Particle) {
	ch := BubbleSmall
	if p.Size > (r.cfg.Particles.MinSize+r.cfg.Particles.MaxSize)/2 {
		ch = BubbleLarge
	}
	dst.SetColor(r.cellX(p.X), r.cellY(p.Y), ch, core.ColorBubble)
}

func (r *ScreenRenderer) drawGround(dst *core.Screen, offset float64) {
	groundRow := r.cellY(r.cfg.Ground.Y)
	dst.DrawHLine(0, groundRow, dst.Width(), SandChar, core.ColorSand)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), SandDeep, core.ColorSand)
	}

	// Seaweed every tile, scrolled by the current offset
	tile := r.cfg.Ground.TileWidth
	for i := 0; float64(i)*tile+offset < r.cfg.Canvas.Width; i++ {
		x := r.cellX(float64(i)*tile + offset)
		ch := SeaweedA
		if i%2 == 1 {
			ch = SeaweedB
		}
		dst.SetColor(x, groundRow-1, ch, core.ColorSeaweed)
	}
}

func (r *ScreenRenderer) drawObstacle(dst *core.Screen, o Obstacle) {
	rect := r.cellRect(o.Box())
	frame, _ := o.Frame()

	switch o.Kind {
	case SmallPredator, LargePredator:
		dst.DrawRect(rect, SharkBody, core.ColorShark)
		dst.SetColor(rect.X, rect.Y+rect.H/2, SharkHead, core.ColorShark)
		if rect.H > 1 {
			dst.SetColor(rect.X+rect.W/2, rect.Y, SharkFin, core.ColorShark)
		}
	case FloaterHigh, FloaterLow:
		dst.DrawRect(core.NewRect(rect.X, rect.Y, rect.W, max(rect.H-1, 1)), OctoHead, core.ColorOctopus)
		legs := []rune{'/', '|', '\\'}
		for x := max(rect.X, 0); x < min(rect.Right(), dst.Width()); x++ {
			dst.SetColor(x, rect.Bottom()-1, legs[cycle(x+frame, len(legs))], core.ColorOctopus)
		}
	case Drifter:
		dst.DrawHLine(rect.X, rect.Y, rect.W, JellyBell, core.ColorJelly)
		tails := []rune{'┆', '╎'}
		for y := rect.Y + 1; y < rect.Bottom(); y++ {
			for x := rect.X; x < rect.Right(); x += 2 {
				dst.SetColor(x, y, tails[cycle(y+frame, len(tails))], core.ColorJelly)
			}
		}
	}
}

// cycle maps i onto [0, n) for sprite frame tables; cells left of the
// screen have negative columns.
func cycle(i, n int) int {
	return (i%n + n) % n
}

func (r *ScreenRenderer) drawPlayer(dst *core.Screen, p Player) {
	rect := r.cellRect(p.Box(r.cfg.Player))
	color := core.ColorFish
	eye := FishEye
	if p.Motion == Dead {
		color = core.ColorFishDead
		eye = FishDeadEye
	}

	dst.DrawRect(rect, FishBody, color)
	tailRow := rect.Y + rect.H/2
	if p.Frame%2 == 1 && rect.H > 1 {
		tailRow = rect.Y
	}
	dst.SetColor(rect.X-1, tailRow, FishTail, color)
	dst.SetColor(rect.Right()-1, rect.Y, eye, core.ColorWhite)
}

func (r *ScreenRenderer) drawHUD(dst *core.Screen, st GameState) {
	text := fmt.Sprintf("HI %05d  %05d", st.HighScore, int(math.Floor(st.Score)))
	dst.DrawTextColor(dst.Width()-len(text)-2, 0, text, core.ColorWhite)
	speed := fmt.Sprintf("SPD %.1f", st.Speed)
	dst.DrawTextColor(2, 0, speed, core.ColorGray)
}

// drawMessage draws a message box in the center of the screen.
func (r *ScreenRenderer) drawMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorGold)
	dst.DrawTextCentered(boxY+1, title, core.ColorGold)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
