package state

import (
	"image/color"
)

type Point struct{ X, Y float32 }

// Tool decides how pointer events are interpreted.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
	ToolRectangle
	ToolOval
	ToolArrow
)

var toolNames = map[Tool]string{
	ToolPen:       "Pen",
	ToolEraser:    "Eraser",
	ToolRectangle: "Rectangle",
	ToolOval:      "Oval",
	ToolArrow:     "Arrow",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Freehand reports whether the tool commits segments while dragging.
func (t Tool) Freehand() bool {
	return t == ToolPen || t == ToolEraser
}

// Style is the color and width applied to newly drawn primitives.
type Style struct {
	Color color.Color
	Width float32
}

type Kind int

const (
	KindLine Kind = iota
	KindRectangle
	KindOval
	KindArrow
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindOval:
		return "oval"
	case KindArrow:
		return "arrow"
	}
	return "unknown"
}

// Handle identifies one primitive on a surface.
type Handle string

// Primitive is a drawn shape. It never changes after it is added;
// replacing one means removing it and adding another.
type Primitive struct {
	Handle Handle
	Kind   Kind
	From   Point
	To     Point
	Color  color.Color
	Width  float32
}

// Bounds returns the normalized top-left and bottom-right corners.
func (p Primitive) Bounds() (min, max Point) {
	min, max = p.From, p.To
	if min.X > max.X {
		min.X, max.X = max.X, min.X
	}
	if min.Y > max.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	return min, max
}
