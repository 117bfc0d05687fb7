package taxi

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-taxi/internal/core"
)

// Visual characters for rendering
const (
	TaxiChar      = '█'
	SpareTaxiChar = '▒'
	CarChar       = '▓'
	DriverChar    = '@'
	PassengerChar = 'P'
	DroppedChar   = '☺'
	FlagChar      = '⚑'
	CoinChar      = '$'
	PowerChar     = '✦'
	FireballChar  = '●'
	RoadEdgeChar  = '│'
	LaneChar      = '¦'
)

const hudRows = 3

// viewport maps world pixels to screen cells.
type viewport struct {
	sx, sy float64
	rows   int
}

func (v viewport) cell(p core.Point) (int, int) {
	return int(math.Floor(float64(p.X) / v.sx)), int(math.Floor(float64(p.Y) / v.sy))
}

// span returns how many cells a radius covers on each axis, at least one.
func (v viewport) span(radius float64) (int, int) {
	return max(1, int(math.Round(2*radius/v.sx))), max(1, int(math.Round(2*radius/v.sy)))
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.driver == nil {
		return
	}
	rows := max(dst.Height()-hudRows, 1)
	v := viewport{
		sx:   float64(g.cfg.World.Width) / float64(max(dst.Width(), 1)),
		sy:   float64(g.cfg.World.Height) / float64(rows),
		rows: rows,
	}

	g.drawRoad(dst, v)

	if cur := g.tripLog().Current(); cur != nil {
		g.drawGlyph(dst, v, cur.Passenger.Plan.Dest, FlagChar, core.ColorBrightGreen)
	}
	for _, p := range g.passengers.Items() {
		g.drawPassenger(dst, v, p)
	}
	for _, c := range g.coins.Items() {
		if c.Alive() {
			g.drawGlyph(dst, v, c.Pos, CoinChar, core.ColorBrightYellow)
		}
	}
	for _, p := range g.powers.Items() {
		if p.Alive() {
			g.drawGlyph(dst, v, p.Pos, PowerChar, core.ColorMagenta)
		}
	}
	for _, c := range g.cars.Items() {
		if c.Alive() {
			g.drawVehicle(dst, v, &c.Body, CarChar, core.ColorCyan)
		}
	}
	for _, c := range g.enemies.Items() {
		if c.Alive() {
			g.drawVehicle(dst, v, &c.Body, CarChar, core.ColorRed)
		}
	}
	if g.wreck != nil {
		g.drawVehicle(dst, v, &Body{Pos: g.wreck.Pos, Radius: g.wreck.Radius}, SpareTaxiChar, core.ColorGray)
	}
	g.drawTaxi(dst, v)
	for _, f := range g.fireballs.Items() {
		if f.Alive() {
			g.drawGlyph(dst, v, f.Pos, FireballChar, core.ColorOrange)
		}
	}
	for _, e := range g.effects.Items() {
		g.drawEffect(dst, v, e)
	}
	if !g.driver.InTaxi && g.driver.Alive() {
		color := core.ColorBrightCyan
		if g.driver.Invincible() && g.frame%8 < 4 {
			color = core.ColorMagenta
		}
		g.drawGlyph(dst, v, g.driver.Pos, DriverChar, color)
	}

	g.drawHUD(dst, rows)

	switch {
	case g.won:
		g.drawCenteredMessage(dst, "LEVEL COMPLETE!", fmt.Sprintf("Earned $%.2f - Press R to restart", g.Earnings()))
	case g.gameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Earned $%.2f - Press R to restart", g.Earnings()))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to continue")
	}
}

func (g *Game) drawRoad(dst *core.Screen, v viewport) {
	side, sideColor := ',', core.ColorGreen
	if g.raining {
		side, sideColor = '\'', core.ColorBlue
	}
	left, _ := v.cell(core.Pt(g.cfg.World.RoadL, 0))
	right, _ := v.cell(core.Pt(g.cfg.World.RoadR, 0))

	for y := 0; y < v.rows; y++ {
		// Stagger the verge so it visibly scrolls.
		wy := int(float64(y)*v.sy) - g.scroll
		for x := 0; x < dst.Width(); x++ {
			if x > left && x < right {
				continue
			}
			if (x+floorDiv(wy, 24))%3 == 0 {
				dst.SetColor(x, y, side, sideColor)
			}
		}
	}
	dst.DrawVLine(left, 0, v.rows, RoadEdgeChar, core.ColorWhite)
	dst.DrawVLine(right, 0, v.rows, RoadEdgeChar, core.ColorWhite)

	lanes := g.cfg.World.Lanes
	for i := 1; i < len(lanes); i++ {
		x, _ := v.cell(core.Pt((lanes[i-1]+lanes[i])/2, 0))
		for y := 0; y < v.rows; y++ {
			wy := int(float64(y)*v.sy) - g.scroll
			if floorDiv(wy, 40)%2 == 0 {
				dst.SetColor(x, y, LaneChar, core.ColorGray)
			}
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (g *Game) drawGlyph(dst *core.Screen, v viewport, p core.Point, r rune, c core.Color) {
	x, y := v.cell(p)
	if y >= v.rows {
		return
	}
	dst.SetColor(x, y, r, c)
}

func (g *Game) drawVehicle(dst *core.Screen, v viewport, b *Body, r rune, c core.Color) {
	cx, cy := v.cell(b.Pos)
	w, h := v.span(b.Radius)
	for dy := 0; dy < h; dy++ {
		y := cy - h/2 + dy
		if y < 0 || y >= v.rows {
			continue
		}
		for dx := 0; dx < w; dx++ {
			dst.SetColor(cx-w/2+dx, y, r, c)
		}
	}
}

func (g *Game) drawTaxi(dst *core.Screen, v viewport) {
	t := g.taxi
	if !t.Alive() {
		return
	}
	char, color := TaxiChar, core.ColorYellow
	switch {
	case !g.driver.InTaxi:
		char = SpareTaxiChar
	case t.Invincible() && g.frame%8 < 4:
		color = core.ColorBrightYellow
		char = SpareTaxiChar
	case t.LockedOut() && g.frame%6 < 3:
		color = core.ColorOrange
	}
	g.drawVehicle(dst, v, &t.Body, char, color)
}

func (g *Game) drawPassenger(dst *core.Screen, v viewport, p *Passenger) {
	switch p.State {
	case PassengerRiding:
		return
	case PassengerDelivered:
		g.drawGlyph(dst, v, p.Pos, DroppedChar, core.ColorGray)
		return
	}
	color := core.ColorBrightGreen
	switch p.Plan.Priority {
	case 1:
		color = core.ColorBrightRed
	case 2:
		color = core.ColorBrightYellow
	}
	g.drawGlyph(dst, v, p.Pos, PassengerChar, color)
}

func (g *Game) drawEffect(dst *core.Screen, v viewport, e *Effect) {
	switch e.Kind {
	case EffectFire:
		g.drawGlyph(dst, v, e.Pos, '▒', core.ColorOrange)
	case EffectBlood:
		g.drawGlyph(dst, v, e.Pos, '*', core.ColorRed)
	default:
		g.drawGlyph(dst, v, e.Pos, '░', core.ColorGray)
	}
}

func (g *Game) drawHUD(dst *core.Screen, top int) {
	w := dst.Width()
	for y := top; y < dst.Height(); y++ {
		dst.DrawRect(core.NewRect(0, y, w, 1), ' ', core.ColorDefault)
	}

	earnings := fmt.Sprintf("$%.2f", g.Earnings())
	if target := g.Target(); target > 0 {
		earnings += fmt.Sprintf(" / $%.2f", target)
	}
	line := fmt.Sprintf("%s  FRAMES %d  TAXI %.0f  DRIVER %.0f",
		earnings, max(g.cfg.Gameplay.MaxFrames-g.frame, 0), g.taxi.Health, g.driver.Health)
	dst.DrawTextColor(1, top, line, core.ColorBrightYellow)

	var status string
	if g.coinTicks > 0 {
		status += fmt.Sprintf(" COIN %d", g.coinTicks)
	}
	if n := g.taxi.InvincibleTicks(); n > 0 && g.driver.InTaxi {
		status += fmt.Sprintf(" SHIELD %d", n)
	}
	if g.raining {
		status += " RAIN"
	}
	dst.DrawTextColor(w-len(status)-1, top, status, core.ColorBrightCyan)

	dst.DrawTextColor(1, top+1, g.tripLine(), core.ColorWhite)
	dst.DrawTextColor(1, top+2, "←→ steer  ↑ drive  P pause  R restart  Q quit", core.ColorGray)
}

func (g *Game) tripLine() string {
	if !g.driver.InTaxi {
		return "Your taxi is wrecked! Walk to the new one."
	}
	log := g.tripLog()
	if cur := log.Current(); cur != nil {
		return fmt.Sprintf("TRIP  expected $%.2f  priority %d", cur.ExpectedFee(g.cfg.Trip), cur.Priority())
	}
	if last := log.LastCompleted(); last != nil {
		return fmt.Sprintf("LAST TRIP  fee $%.2f  penalty $%.2f", last.Fee, last.Penalty)
	}
	return "Stop next to a passenger to pick them up."
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightYellow)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColor(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
