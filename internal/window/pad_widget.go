package window

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/PixPMusic/xy-midi-controller/internal/pad"
)

// ============ XY PAD WIDGET ============

var (
	padBackground = color.White
	padBorder     = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	padGuide      = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	padCrosshair  = color.NRGBA{R: 0xff, A: 0xff}
)

const crosshairArm = 10

// xyPad reports presses, drags and releases in its own coordinates and
// draws a crosshair at the current values
type xyPad struct {
	widget.BaseWidget
	x, y uint8

	onDown func(pad.Point, pad.Size)
	onMove func(pad.Point, pad.Size)
	onUp   func()
}

func newXYPad(onDown, onMove func(pad.Point, pad.Size), onUp func()) *xyPad {
	p := &xyPad{x: 64, y: 64, onDown: onDown, onMove: onMove, onUp: onUp}
	p.ExtendBaseWidget(p)
	return p
}

// SetValues moves the crosshair
func (p *xyPad) SetValues(x, y uint8) {
	if p.x == x && p.y == y {
		return
	}
	p.x, p.y = x, y
	p.Refresh()
}

func (p *xyPad) surface() pad.Size {
	s := p.Size()
	return pad.Size{Width: s.Width, Height: s.Height}
}

func (p *xyPad) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || p.onDown == nil {
		return
	}
	p.onDown(pad.Point{X: e.Position.X, Y: e.Position.Y}, p.surface())
}

func (p *xyPad) MouseUp(_ *desktop.MouseEvent) {
	if p.onUp != nil {
		p.onUp()
	}
}

func (p *xyPad) Dragged(e *fyne.DragEvent) {
	if p.onMove != nil {
		p.onMove(pad.Point{X: e.Position.X, Y: e.Position.Y}, p.surface())
	}
}

// DragEnd also fires when the button is released outside the pad
func (p *xyPad) DragEnd() {
	if p.onUp != nil {
		p.onUp()
	}
}

func (p *xyPad) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(padBackground)
	bg.StrokeColor = padBorder
	bg.StrokeWidth = 2

	guideH := canvas.NewLine(padGuide)
	guideV := canvas.NewLine(padGuide)

	crossH := canvas.NewLine(padCrosshair)
	crossH.StrokeWidth = 2
	crossV := canvas.NewLine(padCrosshair)
	crossV.StrokeWidth = 2

	dot := canvas.NewCircle(padCrosshair)

	r := &xyPadRenderer{
		p:      p,
		bg:     bg,
		guideH: guideH,
		guideV: guideV,
		crossH: crossH,
		crossV: crossV,
		dot:    dot,
	}
	r.objects = []fyne.CanvasObject{bg, guideH, guideV, crossH, crossV, dot}
	return r
}

type xyPadRenderer struct {
	p              *xyPad
	bg             *canvas.Rectangle
	guideH, guideV *canvas.Line
	crossH, crossV *canvas.Line
	dot            *canvas.Circle
	objects        []fyne.CanvasObject
}

func (r *xyPadRenderer) Destroy()                     {}
func (r *xyPadRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *xyPadRenderer) MinSize() fyne.Size {
	return fyne.NewSize(pad.FallbackWidth, pad.FallbackHeight)
}

func (r *xyPadRenderer) Refresh() {
	r.Layout(r.p.Size())
	canvas.Refresh(r.p)
}

func (r *xyPadRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	r.guideH.Position1 = fyne.NewPos(0, size.Height/2)
	r.guideH.Position2 = fyne.NewPos(size.Width, size.Height/2)
	r.guideV.Position1 = fyne.NewPos(size.Width/2, 0)
	r.guideV.Position2 = fyne.NewPos(size.Width/2, size.Height)

	c := pad.Position(r.p.x, r.p.y, pad.Size{Width: size.Width, Height: size.Height})
	r.crossH.Position1 = fyne.NewPos(c.X-crosshairArm, c.Y)
	r.crossH.Position2 = fyne.NewPos(c.X+crosshairArm, c.Y)
	r.crossV.Position1 = fyne.NewPos(c.X, c.Y-crosshairArm)
	r.crossV.Position2 = fyne.NewPos(c.X, c.Y+crosshairArm)

	r.dot.Position1 = fyne.NewPos(c.X-3, c.Y-3)
	r.dot.Position2 = fyne.NewPos(c.X+3, c.Y+3)
}
