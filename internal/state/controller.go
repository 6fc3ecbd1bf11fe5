package state

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
)

const (
	MinWidth float32 = 1
	MaxWidth float32 = 50
)

// Surface is anything that can hold and export drawn primitives.
type Surface interface {
	AddLine(from, to Point, c color.Color, width float32) Handle
	AddRectangle(from, to Point, c color.Color, width float32) Handle
	AddOval(from, to Point, c color.Color, width float32) Handle
	AddArrow(from, to Point, c color.Color, width float32) Handle
	Remove(h Handle) error
	Clear()
	Len() int
	ExportToFile(path string) error
}

// ColorDialog asks the user for a color. ok is false when the dialog was cancelled.
type ColorDialog interface {
	PickColor(done func(c color.Color, ok bool))
}

// SaveDialog asks the user for a destination path. ok is false when cancelled.
type SaveDialog interface {
	PickSavePath(done func(path string, ok bool))
}

// Notifier shows messages to the user.
type Notifier interface {
	Info(title, message string)
	Error(err error)
}

// Controller turns pointer events and toolbar actions into drawing operations.
type Controller struct {
	surface    Surface
	session    Session
	tool       Tool
	style      Style
	ink        color.Color // last non-eraser color
	background color.Color
	OnStyle    func(Style) // called after the color or width changes
}

func NewController(s Surface, background color.Color, style Style) *Controller {
	if style.Color == nil {
		style.Color = color.Black
	}
	style.Width = clampWidth(style.Width)
	return &Controller{
		surface:    s,
		tool:       ToolPen,
		style:      style,
		ink:        style.Color,
		background: background,
	}
}

func clampWidth(w float32) float32 {
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}

func (c *Controller) Tool() Tool { return c.tool }

func (c *Controller) Style() Style { return c.style }

func (c *Controller) Surface() Surface { return c.surface }

// Provisional returns the handle of the shape being dragged out, if any.
func (c *Controller) Provisional() (Handle, bool) { return c.session.Provisional() }

// SelectTool switches tools. The eraser paints with the background color;
// leaving it brings back the last ink color.
func (c *Controller) SelectTool(t Tool) {
	prev := c.tool
	c.tool = t
	switch {
	case t == ToolEraser:
		c.style.Color = c.background
	case prev == ToolEraser:
		c.style.Color = c.ink
	}
	log.Printf("[BOARD] Tool: %s", t)
	c.styleChanged()
}

// SelectColor sets the ink color and goes back to the pen.
func (c *Controller) SelectColor(col color.Color) {
	c.ink = col
	c.style.Color = col
	c.tool = ToolPen
	c.styleChanged()
}

// ChooseColor opens the color dialog. Cancelling leaves everything as it was.
func (c *Controller) ChooseColor(d ColorDialog) {
	d.PickColor(func(col color.Color, ok bool) {
		if !ok || col == nil {
			return
		}
		c.SelectColor(col)
	})
}

func (c *Controller) SetWidth(w float32) {
	c.style.Width = clampWidth(w)
	c.styleChanged()
}

func (c *Controller) styleChanged() {
	if c.OnStyle != nil {
		c.OnStyle(c.style)
	}
}

func (c *Controller) PointerDown(p Point) {
	c.session.Begin(p)
}

func (c *Controller) PointerDrag(p Point) {
	if c.tool.Freehand() {
		last, ok := c.session.Last()
		if !ok {
			return
		}
		c.surface.AddLine(last, p, c.style.Color, c.style.Width)
		c.session.Advance(p)
		return
	}

	origin, ok := c.session.Origin()
	if !ok {
		return
	}
	if h, ok := c.session.Provisional(); ok {
		if err := c.surface.Remove(h); err != nil {
			log.Printf("[BOARD] Provisional %s already gone: %v", h, err)
		}
		c.session.ClearProvisional()
	}
	c.session.SetProvisional(c.addShape(origin, p))
}

// PointerUp commits the dragged shape. The provisional copy is removed first so
// the final shape is never stacked on top of it.
func (c *Controller) PointerUp(p Point) {
	if !c.session.Active() {
		return
	}
	defer c.session.End()

	if c.tool.Freehand() {
		return
	}
	origin, ok := c.session.Origin()
	if !ok {
		return
	}
	if h, ok := c.session.Provisional(); ok {
		if err := c.surface.Remove(h); err != nil {
			log.Printf("[BOARD] Provisional %s already gone: %v", h, err)
		}
	}
	h := c.addShape(origin, p)
	log.Printf("[BOARD] Committed %s %s", c.tool, h)
}

func (c *Controller) addShape(from, to Point) Handle {
	switch c.tool {
	case ToolRectangle:
		return c.surface.AddRectangle(from, to, c.style.Color, c.style.Width)
	case ToolOval:
		return c.surface.AddOval(from, to, c.style.Color, c.style.Width)
	default:
		return c.surface.AddArrow(from, to, c.style.Color, c.style.Width)
	}
}

// ClearAll wipes the surface. There is no confirmation and no way back.
func (c *Controller) ClearAll() {
	c.session.ClearProvisional()
	c.surface.Clear()
}

// Export asks for a destination and writes the surface there. Failures are
// reported to the user and never propagate.
func (c *Controller) Export(d SaveDialog, n Notifier) {
	d.PickSavePath(func(path string, ok bool) {
		if !ok || path == "" {
			return
		}
		path = ExportPath(path)
		if err := c.surface.ExportToFile(path); err != nil {
			log.Printf("[EXPORT] Failed: %v", err)
			n.Error(fmt.Errorf("export %s: %w", path, err))
			return
		}
		log.Printf("[EXPORT] Wrote %s", path)
		n.Info("Success", fmt.Sprintf("Drawing exported to %s", path))
	})
}

// ExportPath gives an extensionless destination the default .png extension.
func ExportPath(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".png"
	}
	return path
}
