package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"LocalWhiteboard/internal/state"

	"github.com/fogleman/gg"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrEmptySurface      = errors.New("surface has no area")
)

// ToFile writes prims to path in the format named by its extension.
// Nothing is left at path when it fails.
func ToFile(path string, prims []state.Primitive, width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrEmptySurface
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG(path, prims, width, height)
	case ".pdf":
		return PDF(path, prims, width, height)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Rasterize draws prims onto a transparent width x height image.
func Rasterize(prims []state.Primitive, width, height int) image.Image {
	return render(prims, width, height).Image()
}

func render(prims []state.Primitive, width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetLineJoinRound()
	for _, p := range prims {
		drawPrimitive(dc, p)
	}
	return dc
}

func drawPrimitive(dc *gg.Context, p state.Primitive) {
	c := p.Color
	if c == nil {
		c = color.Black
	}
	dc.SetColor(c)
	dc.SetLineWidth(float64(p.Width))

	switch p.Kind {
	case state.KindLine:
		dc.SetLineCapRound()
		dc.DrawLine(float64(p.From.X), float64(p.From.Y), float64(p.To.X), float64(p.To.Y))
		dc.Stroke()
	case state.KindRectangle:
		min, max := p.Bounds()
		dc.DrawRectangle(float64(min.X), float64(min.Y), float64(max.X-min.X), float64(max.Y-min.Y))
		dc.Stroke()
	case state.KindOval:
		min, max := p.Bounds()
		rx, ry := float64(max.X-min.X)/2, float64(max.Y-min.Y)/2
		dc.DrawEllipse(float64(min.X)+rx, float64(min.Y)+ry, rx, ry)
		dc.Stroke()
	case state.KindArrow:
		head, ok := state.ArrowHead(p.From, p.To, p.Width)
		if !ok {
			return
		}
		dc.SetLineCapButt()
		dc.DrawLine(float64(p.From.X), float64(p.From.Y), float64(head.Neck.X), float64(head.Neck.Y))
		dc.Stroke()
		dc.MoveTo(float64(head.Tip.X), float64(head.Tip.Y))
		dc.LineTo(float64(head.Left.X), float64(head.Left.Y))
		dc.LineTo(float64(head.Neck.X), float64(head.Neck.Y))
		dc.LineTo(float64(head.Right.X), float64(head.Right.Y))
		dc.ClosePath()
		dc.Fill()
	}
}

// PNG rasterizes prims with a transparent background and saves them to path.
func PNG(path string, prims []state.Primitive, width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrEmptySurface
	}
	dc := render(prims, width, height)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
