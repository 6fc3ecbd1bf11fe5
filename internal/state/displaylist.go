package state

import (
	"errors"
	"image/color"
	"log"
	"sync"

	"github.com/google/uuid"
)

// ErrUnknownHandle is returned when removing a primitive that is not on the list.
var ErrUnknownHandle = errors.New("unknown primitive handle")

// DisplayList is the ordered, append-only store of everything drawn on a board.
// Backends embed it and render its snapshot.
type DisplayList struct {
	prims    []Primitive
	index    map[Handle]int
	mu       sync.RWMutex
	OnChange func() // set by the rendering backend to repaint
}

func NewDisplayList() *DisplayList {
	return &DisplayList{
		prims: make([]Primitive, 0),
		index: make(map[Handle]int),
	}
}

func newHandle() Handle {
	return Handle(uuid.NewString())
}

func (d *DisplayList) add(kind Kind, from, to Point, c color.Color, width float32) Handle {
	d.mu.Lock()
	p := Primitive{
		Handle: newHandle(),
		Kind:   kind,
		From:   from,
		To:     to,
		Color:  c,
		Width:  width,
	}
	d.index[p.Handle] = len(d.prims)
	d.prims = append(d.prims, p)
	d.mu.Unlock()

	d.changed()
	return p.Handle
}

func (d *DisplayList) AddLine(from, to Point, c color.Color, width float32) Handle {
	return d.add(KindLine, from, to, c, width)
}

func (d *DisplayList) AddRectangle(from, to Point, c color.Color, width float32) Handle {
	return d.add(KindRectangle, from, to, c, width)
}

func (d *DisplayList) AddOval(from, to Point, c color.Color, width float32) Handle {
	return d.add(KindOval, from, to, c, width)
}

func (d *DisplayList) AddArrow(from, to Point, c color.Color, width float32) Handle {
	return d.add(KindArrow, from, to, c, width)
}

// Remove deletes a single primitive. The list is left untouched when the
// handle is unknown.
func (d *DisplayList) Remove(h Handle) error {
	d.mu.Lock()
	i, ok := d.index[h]
	if !ok {
		d.mu.Unlock()
		return ErrUnknownHandle
	}
	d.prims = append(d.prims[:i], d.prims[i+1:]...)
	delete(d.index, h)
	for j := i; j < len(d.prims); j++ {
		d.index[d.prims[j].Handle] = j
	}
	d.mu.Unlock()

	d.changed()
	return nil
}

func (d *DisplayList) Clear() {
	d.mu.Lock()
	n := len(d.prims)
	d.prims = make([]Primitive, 0)
	d.index = make(map[Handle]int)
	d.mu.Unlock()

	log.Printf("[BOARD] Cleared %d primitives", n)
	d.changed()
}

func (d *DisplayList) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.prims)
}

// Primitives returns a copy of the list in drawing order.
func (d *DisplayList) Primitives() []Primitive {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Primitive, len(d.prims))
	copy(out, d.prims)
	return out
}

// Get looks up a primitive by handle.
func (d *DisplayList) Get(h Handle) (Primitive, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i, ok := d.index[h]
	if !ok {
		return Primitive{}, false
	}
	return d.prims[i], true
}

func (d *DisplayList) changed() {
	if d.OnChange != nil {
		d.OnChange()
	}
}
