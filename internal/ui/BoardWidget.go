package ui

import (
	"fmt"
	"image/color"

	"LocalWhiteboard/internal/config"
	"LocalWhiteboard/internal/export"
	"LocalWhiteboard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the drawing surface. It keeps the display list, paints it with
// fyne canvas objects and feeds pointer events to its controller.
type BoardWidget struct {
	widget.BaseWidget
	*state.DisplayList
	controller *state.Controller
	background color.Color
	pressed    bool
	lastPos    fyne.Position
	statusBar  *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ state.Surface = (*BoardWidget)(nil)

func NewBoardWidget(cfg config.Config) *BoardWidget {
	b := &BoardWidget{
		DisplayList: state.NewDisplayList(),
		background:  cfg.Background,
		statusBar:   widget.NewLabel("Ready"),
	}
	b.controller = state.NewController(b, cfg.Background, state.Style{Color: cfg.Ink, Width: cfg.LineWidth})
	b.DisplayList.OnChange = b.Refresh
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Controller() *state.Controller { return b.controller }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) showStyle() {
	s := b.controller.Style()
	b.SetStatus(fmt.Sprintf("Tool: %s   Color: %s   Width: %.0f",
		b.controller.Tool(), config.Hex(s.Color), s.Width))
}

// ExportToFile writes what is on screen, at the board's current size.
func (b *BoardWidget) ExportToFile(path string) error {
	size := b.Size()
	return export.ToFile(path, b.Primitives(), int(size.Width), int(size.Height))
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pressed = true
	b.lastPos = e.Position
	b.controller.PointerDown(toPoint(e.Position))
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.pressed {
		return
	}
	b.lastPos = e.Position
	b.controller.PointerDrag(toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.pressed {
		return
	}
	b.release(e.Position)
}

// DragEnd covers releases that happen outside the widget, where no MouseUp
// is delivered.
func (b *BoardWidget) DragEnd() {
	if b.pressed {
		b.release(b.lastPos)
	}
}

func (b *BoardWidget) release(pos fyne.Position) {
	b.pressed = false
	b.controller.PointerUp(toPoint(pos))
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(b.background)
	r.objects = r.build()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) build() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}
	for _, p := range r.board.Primitives() {
		objects = append(objects, primitiveObjects(p)...)
	}
	return objects
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.objects = r.build()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut() {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func pos(p state.Point) fyne.Position {
	return fyne.NewPos(p.X, p.Y)
}

func newSegment(c color.Color, width float32, from, to state.Point) *canvas.Line {
	l := canvas.NewLine(c)
	l.StrokeWidth = width
	l.Position1 = pos(from)
	l.Position2 = pos(to)
	return l
}

// roundCap paints a dot over a segment end; fyne lines have square ends.
func roundCap(c color.Color, width float32, at state.Point) fyne.CanvasObject {
	dot := canvas.NewCircle(c)
	dot.Move(fyne.NewPos(at.X-width/2, at.Y-width/2))
	dot.Resize(fyne.NewSize(width, width))
	return dot
}

func primitiveObjects(p state.Primitive) []fyne.CanvasObject {
	c := p.Color
	if c == nil {
		c = color.Black
	}
	switch p.Kind {
	case state.KindLine:
		objs := []fyne.CanvasObject{newSegment(c, p.Width, p.From, p.To)}
		if p.Width > 2 {
			objs = append(objs, roundCap(c, p.Width, p.From), roundCap(c, p.Width, p.To))
		}
		return objs
	case state.KindRectangle, state.KindOval:
		min, max := p.Bounds()
		var shape fyne.CanvasObject
		if p.Kind == state.KindRectangle {
			rect := canvas.NewRectangle(color.Transparent)
			rect.StrokeColor = c
			rect.StrokeWidth = p.Width
			shape = rect
		} else {
			oval := canvas.NewCircle(color.Transparent)
			oval.StrokeColor = c
			oval.StrokeWidth = p.Width
			shape = oval
		}
		shape.Move(pos(min))
		shape.Resize(fyne.NewSize(max.X-min.X, max.Y-min.Y))
		return []fyne.CanvasObject{shape}
	case state.KindArrow:
		head, ok := state.ArrowHead(p.From, p.To, p.Width)
		if !ok {
			return nil
		}
		return []fyne.CanvasObject{
			newSegment(c, p.Width, p.From, head.Neck),
			newSegment(c, 2, head.Tip, head.Left),
			newSegment(c, 2, head.Left, head.Neck),
			newSegment(c, 2, head.Neck, head.Right),
			newSegment(c, 2, head.Right, head.Tip),
		}
	}
	return nil
}
