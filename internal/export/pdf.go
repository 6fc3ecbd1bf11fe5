package export

import (
	"image/color"
	"os"

	"LocalWhiteboard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// PDF writes prims as vector shapes on a single page sized to the board,
// one point per pixel.
func PDF(path string, prims []state.Primitive, width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrEmptySurface
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	p.AddPage()
	p.SetLineJoinStyle("round")

	for _, st := range prims {
		r, g, b := rgb(st.Color)
		p.SetDrawColor(r, g, b)
		p.SetFillColor(r, g, b)
		p.SetLineWidth(float64(st.Width))

		switch st.Kind {
		case state.KindLine:
			p.SetLineCapStyle("round")
			p.Line(float64(st.From.X), float64(st.From.Y), float64(st.To.X), float64(st.To.Y))
		case state.KindRectangle:
			min, max := st.Bounds()
			p.Rect(float64(min.X), float64(min.Y), float64(max.X-min.X), float64(max.Y-min.Y), "D")
		case state.KindOval:
			min, max := st.Bounds()
			rx, ry := float64(max.X-min.X)/2, float64(max.Y-min.Y)/2
			p.Ellipse(float64(min.X)+rx, float64(min.Y)+ry, rx, ry, 0, "D")
		case state.KindArrow:
			head, ok := state.ArrowHead(st.From, st.To, st.Width)
			if !ok {
				continue
			}
			p.SetLineCapStyle("butt")
			p.Line(float64(st.From.X), float64(st.From.Y), float64(head.Neck.X), float64(head.Neck.Y))
			p.Polygon([]gofpdf.PointType{
				{X: float64(head.Tip.X), Y: float64(head.Tip.Y)},
				{X: float64(head.Left.X), Y: float64(head.Left.Y)},
				{X: float64(head.Neck.X), Y: float64(head.Neck.Y)},
				{X: float64(head.Right.X), Y: float64(head.Right.Y)},
			}, "F")
		}
	}

	if err := p.OutputFileAndClose(path); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func rgb(c color.Color) (int, int, int) {
	if c == nil {
		return 0, 0, 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B)
}
