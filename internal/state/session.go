package state

// Session is the in-progress gesture: where the pointer went down, where the
// last freehand segment ended and which primitive, if any, is provisional.
type Session struct {
	active      bool
	last        Point
	hasLast     bool
	origin      Point
	hasOrigin   bool
	provisional Handle
}

// Begin starts a new gesture at p and forgets any provisional handle.
func (s *Session) Begin(p Point) {
	s.active = true
	s.last, s.hasLast = p, true
	s.origin, s.hasOrigin = p, true
	s.provisional = ""
}

// End closes the gesture. Later drags without a new Begin are ignored.
func (s *Session) End() {
	s.active = false
	s.hasLast = false
	s.hasOrigin = false
	s.provisional = ""
}

func (s *Session) Active() bool { return s.active }

func (s *Session) Last() (Point, bool) { return s.last, s.active && s.hasLast }

func (s *Session) Origin() (Point, bool) { return s.origin, s.active && s.hasOrigin }

func (s *Session) Advance(p Point) { s.last = p }

func (s *Session) Provisional() (Handle, bool) {
	return s.provisional, s.provisional != ""
}

func (s *Session) SetProvisional(h Handle) { s.provisional = h }

func (s *Session) ClearProvisional() { s.provisional = "" }
