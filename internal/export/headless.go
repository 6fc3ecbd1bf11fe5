package export

import (
	"LocalWhiteboard/internal/state"
)

// Headless is a board with a fixed pixel size and no window. It renders only
// when exported.
type Headless struct {
	*state.DisplayList
	Width, Height int
}

var _ state.Surface = (*Headless)(nil)

func NewHeadless(width, height int) *Headless {
	return &Headless{
		DisplayList: state.NewDisplayList(),
		Width:       width,
		Height:      height,
	}
}

func (h *Headless) ExportToFile(path string) error {
	return ToFile(path, h.Primitives(), h.Width, h.Height)
}
