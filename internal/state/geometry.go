package state

import "math"

// Arrow head shape, fixed for every arrow: the neck sits ArrowNeck back from
// the tip along the shaft, the wings ArrowWing back and ArrowSpread out past
// the edge of the shaft.
const (
	ArrowNeck   = 15
	ArrowWing   = 20
	ArrowSpread = 5
)

// Head is the polygon drawn at the terminal end of an arrow.
type Head struct {
	Tip, Left, Neck, Right Point
}

// ArrowHead computes the head for an arrow running from -> to with the given
// shaft width. ok is false when the arrow has no length.
func ArrowHead(from, to Point, width float32) (h Head, ok bool) {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	length := math.Hypot(dx, dy)
	if length < 1e-6 {
		return Head{}, false
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux
	spread := float64(width)/2 + ArrowSpread

	tx, ty := float64(to.X), float64(to.Y)
	wx, wy := tx-ux*ArrowWing, ty-uy*ArrowWing
	h = Head{
		Tip:   to,
		Left:  Point{X: float32(wx + nx*spread), Y: float32(wy + ny*spread)},
		Neck:  Point{X: float32(tx - ux*ArrowNeck), Y: float32(ty - uy*ArrowNeck)},
		Right: Point{X: float32(wx - nx*spread), Y: float32(wy - ny*spread)},
	}
	return h, true
}
