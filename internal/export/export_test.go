package export

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"LocalWhiteboard/internal/state"
)

type notes struct {
	infos  []string
	errors []error
}

func (n *notes) Info(_, msg string) { n.infos = append(n.infos, msg) }

func (n *notes) Error(err error) { n.errors = append(n.errors, err) }

type savePath string

func (p savePath) PickSavePath(done func(string, bool)) { done(string(p), true) }

func drawSample(h *Headless) {
	c := state.NewController(h, color.White, state.Style{Color: color.Black, Width: 4})
	c.PointerDown(state.Point{X: 10, Y: 10})
	c.PointerDrag(state.Point{X: 60, Y: 10})
	c.PointerUp(state.Point{X: 60, Y: 10})

	c.SelectTool(state.ToolRectangle)
	c.PointerDown(state.Point{X: 20, Y: 30})
	c.PointerDrag(state.Point{X: 70, Y: 60})
	c.PointerUp(state.Point{X: 70, Y: 60})
}

func TestExportPNGDimensions(t *testing.T) {
	h := NewHeadless(120, 80)
	drawSample(h)

	path := filepath.Join(t.TempDir(), "board.png")
	if err := h.ExportToFile(path); err != nil {
		t.Fatalf("ExportToFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("image is %dx%d, want 120x80", b.Dx(), b.Dy())
	}
	if _, _, _, a := img.At(110, 75).RGBA(); a != 0 {
		t.Errorf("background pixel alpha = %d, want transparent", a)
	}
	if _, _, _, a := img.At(35, 10).RGBA(); a == 0 {
		t.Error("pen stroke missing from export")
	}
	if _, _, _, a := img.At(20, 45).RGBA(); a == 0 {
		t.Error("rectangle edge missing from export")
	}
	if _, _, _, a := img.At(45, 45).RGBA(); a != 0 {
		t.Error("rectangle should not be filled")
	}
}

func TestRasterizeArrowHead(t *testing.T) {
	prims := []state.Primitive{{
		Kind:  state.KindArrow,
		From:  state.Point{X: 5, Y: 50},
		To:    state.Point{X: 90, Y: 50},
		Color: color.Black,
		Width: 2,
	}}
	img := Rasterize(prims, 100, 100)
	// inside the head, off the shaft
	if _, _, _, a := img.At(82, 51).RGBA(); a == 0 {
		t.Error("arrow head not filled")
	}
	if _, _, _, a := img.At(30, 56).RGBA(); a != 0 {
		t.Error("shaft should be thin away from the head")
	}
}

func TestExportInvalidPathLeavesNoFile(t *testing.T) {
	h := NewHeadless(50, 50)
	drawSample(h)

	path := filepath.Join(t.TempDir(), "missing-dir", "board.png")
	n := &notes{}
	c := state.NewController(h, color.White, state.Style{Width: 3})
	c.Export(savePath(path), n)

	if len(n.errors) != 1 {
		t.Fatalf("expected one failure notification, got %v", n.errors)
	}
	if len(n.infos) != 0 {
		t.Errorf("unexpected success notification %v", n.infos)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file at %s, stat err = %v", path, err)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	h := NewHeadless(10, 10)
	path := filepath.Join(t.TempDir(), "board.gif")
	err := h.ExportToFile(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("unsupported export should not create a file")
	}
}

func TestExportEmptySurface(t *testing.T) {
	h := NewHeadless(0, 40)
	if err := h.ExportToFile(filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, ErrEmptySurface) {
		t.Fatalf("expected ErrEmptySurface, got %v", err)
	}
}

func TestExportPDF(t *testing.T) {
	h := NewHeadless(200, 150)
	drawSample(h)
	h.AddOval(state.Point{X: 100, Y: 100}, state.Point{X: 150, Y: 140}, color.NRGBA{B: 255, A: 255}, 2)
	h.AddArrow(state.Point{X: 0, Y: 0}, state.Point{X: 180, Y: 120}, color.Black, 3)

	path := filepath.Join(t.TempDir(), "board.pdf")
	if err := h.ExportToFile(path); err != nil {
		t.Fatalf("ExportToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", data[:min(len(data), 8)])
	}
}

func TestExportExtensionless(t *testing.T) {
	h := NewHeadless(30, 30)
	dir := t.TempDir()
	n := &notes{}
	c := state.NewController(h, color.White, state.Style{Width: 3})
	c.Export(savePath(filepath.Join(dir, "sketch")), n)

	if len(n.errors) != 0 {
		t.Fatalf("unexpected errors %v", n.errors)
	}
	if _, err := os.Stat(filepath.Join(dir, "sketch.png")); err != nil {
		t.Errorf("expected sketch.png: %v", err)
	}
}
