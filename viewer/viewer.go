// Package viewer implements an interactive framebuffer playground for the
// geom vector type: two editable vectors plus their derived values (sum,
// unit, orthogonal, mix point) drawn live.
package viewer

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"tinygo.org/x/tinyfont"

	"glint/geom"
	"glint/hal"
	"glint/modules"
)

const (
	viewRange = 4.0 // world units from center to the nearest screen edge
	rotStep   = math.Pi / 36
	scaleStep = 1.1
	mixStep   = 0.05
)

// App is the interactive vector playground.
type App struct {
	log hal.Logger
	fb  hal.Framebuffer
	d   *fbDisplay
	kbd hal.Keyboard
	reg *modules.Registry

	font       tinyfont.Fonter
	fontHeight int16
	fontOffset int16

	a, b geom.Vec2
	sel  int // 0 edits a, 1 edits b
	mixT float64

	showHelp bool
}

// New builds the playground over the given HAL surfaces. reg supplies the
// module list shown in the header; it may be nil.
func New(h hal.HAL, reg *modules.Registry) *App {
	fb := h.Display().Framebuffer()
	app := &App{
		log:        h.Logger(),
		fb:         fb,
		d:          newFBDisplay(fb),
		kbd:        h.Input().Keyboard(),
		reg:        reg,
		font:       &tinyfont.TomThumb,
		fontHeight: 8,
		fontOffset: 6,
		mixT:       0.5,
	}
	app.reset()
	return app
}

func (a *App) reset() {
	a.a = geom.V(2, 1)
	a.b = geom.V(-1, 2)
	a.sel = 0
	a.mixT = 0.5
}

// Step handles pending input and redraws. It is the per-frame hook for
// hal.RunWindow and hal.RunHeadless.
func (a *App) Step() error {
	a.drainKeys()
	a.render()
	return nil
}

func (a *App) drainKeys() {
	if a.kbd == nil {
		return
	}
	for {
		select {
		case ev := <-a.kbd.Events():
			a.handleKey(ev)
		default:
			return
		}
	}
}

func (a *App) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}

	switch ev.Code {
	case hal.KeyTab:
		a.sel ^= 1
		return
	case hal.KeyLeft:
		a.rotateSelected(rotStep)
		return
	case hal.KeyRight:
		a.rotateSelected(-rotStep)
		return
	case hal.KeyUp:
		a.scaleSelected(scaleStep)
		return
	case hal.KeyDown:
		a.scaleSelected(1 / scaleStep)
		return
	case hal.KeyF1:
		a.showHelp = !a.showHelp
		return
	}

	switch ev.Rune {
	case '+', '=':
		a.mixT += mixStep
	case '-':
		a.mixT -= mixStep
	case 'z':
		a.reset()
	case 'p':
		if a.log != nil {
			a.log.WriteLineString(a.statusText())
		}
	}
}

func (a *App) selected() *geom.Vec2 {
	if a.sel == 0 {
		return &a.a
	}
	return &a.b
}

func (a *App) rotateSelected(da float64) {
	v := a.selected()
	n := geom.Norm(*v)
	if n == 0 {
		return
	}
	ang := math.Atan2(v.Y, v.X)
	*v = geom.Polar(ang + da).Scale(n)
}

func (a *App) scaleSelected(s float64) {
	v := a.selected()
	*v = v.Scale(s)
}

func (a *App) headerText() string {
	names := "-"
	if a.reg != nil {
		names = strings.Join(a.reg.Names(), " ")
	}
	return "glint  modules: " + names
}

func (a *App) statusText() string {
	sum := a.a.Add(a.b)
	return fmt.Sprintf("a=%v b=%v a+b=%v dot=%g |a|=%g cmp=%d t=%g",
		a.a, a.b, sum, geom.Dot(a.a, a.b), geom.Norm(a.a), a.a.Compare(a.b), a.mixT)
}

func (a *App) render() {
	if a.fb == nil || a.d == nil {
		return
	}
	w := a.fb.Width()
	h := a.fb.Height()
	if w <= 0 || h <= 0 {
		return
	}

	_ = a.d.FillRectangle(0, 0, int16(w), int16(h), colorBG)
	a.renderGrid(w, h)

	// Derived vectors first so the editable ones draw on top.
	a.drawVec(a.a.Add(a.b), w, h, colorSum, "a+b")
	a.drawVec(geom.Unit(a.a), w, h, colorUnit, "unit")
	a.drawVec(a.a.Ortho(), w, h, colorOrtho, "ortho")

	labelA := "a"
	labelB := "b"
	if a.sel == 0 {
		labelA = "[a]"
	} else {
		labelB = "[b]"
	}
	a.drawVec(a.a, w, h, colorVecA, labelA)
	a.drawVec(a.b, w, h, colorVecB, labelB)

	// Mix point along the a->b segment.
	ax, ay := a.at(a.a, w, h)
	bx, by := a.at(a.b, w, h)
	a.d.drawLine(ax, ay, bx, by, colorGrid)
	mx, my := a.at(a.a.Mix(a.b, a.mixT), w, h)
	a.d.drawMarker(mx, my, colorMix)

	a.renderHeader(w)
	a.renderStatus(w, h)
	if a.showHelp {
		a.renderHelp()
	}

	_ = a.fb.Present()
}

func (a *App) at(v geom.Vec2, w, h int) (x, y int16) {
	return worldToScreen(v, w, h, viewRange)
}

func (a *App) renderGrid(w, h int) {
	for g := -int(viewRange); g <= int(viewRange); g++ {
		c := colorGrid
		if g == 0 {
			c = colorAxis
		}
		x0, y0 := a.at(geom.V(float64(g), -viewRange), w, h)
		x1, y1 := a.at(geom.V(float64(g), viewRange), w, h)
		a.d.drawLine(x0, y0, x1, y1, c)
		x0, y0 = a.at(geom.V(-viewRange, float64(g)), w, h)
		x1, y1 = a.at(geom.V(viewRange, float64(g)), w, h)
		a.d.drawLine(x0, y0, x1, y1, c)
	}
}

// drawVec draws v as a line from the origin with a tip marker and label.
// NaN components (for example Unit of the zero vector) skip the draw.
func (a *App) drawVec(v geom.Vec2, w, h int, c color.RGBA, label string) {
	if v.Any(math.IsNaN) {
		return
	}
	ox, oy := a.at(geom.Zero(), w, h)
	tx, ty := a.at(v, w, h)
	a.d.drawLine(ox, oy, tx, ty, c)
	a.d.drawMarker(tx, ty, c)
	if label != "" {
		tinyfont.WriteLine(a.d, a.font, tx+4, ty+a.fontOffset, label, c)
	}
}

func (a *App) renderHeader(w int) {
	_ = a.d.FillRectangle(0, 0, int16(w), a.fontHeight, colorHeaderBG)
	tinyfont.WriteLine(a.d, a.font, 2, a.fontOffset, a.headerText(), colorFG)
}

func (a *App) renderStatus(w, h int) {
	y := int16(h) - a.fontHeight
	_ = a.d.FillRectangle(0, y, int16(w), a.fontHeight, colorHeaderBG)
	tinyfont.WriteLine(a.d, a.font, 2, y+a.fontOffset, a.statusText(), colorFG)
}

func (a *App) renderHelp() {
	lines := []string{
		"tab    select a/b",
		"arrows rotate/scale selection",
		"+/-    move mix point",
		"z      reset",
		"p      print status to log",
		"f1     toggle this help",
	}
	y := a.fontHeight + 4
	for _, s := range lines {
		tinyfont.WriteLine(a.d, a.font, 4, y+a.fontOffset, s, colorDim)
		y += a.fontHeight
	}
}
