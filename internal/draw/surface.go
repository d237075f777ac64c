package draw

import "image/color"

// Surface is a fixed-size 2D drawing target in logical pixel coordinates.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// FillRect fills the axis-aligned rectangle at (x, y) of size w×h.
	FillRect(x, y, w, h float64, c color.RGBA)
}

// FillOp is a single recorded FillRect call.
type FillOp struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Recorder is a Surface that keeps the fills issued since the last Clear.
// Frontends that draw outside the update step (ebiten) replay it later;
// tests use it to inspect what a tick rendered.
type Recorder struct {
	Ops    []FillOp
	Clears int // Number of Clear calls seen
}

// Clear discards all recorded fills.
func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
	r.Clears++
}

// FillRect records a fill.
func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.Ops = append(r.Ops, FillOp{X: x, Y: y, W: w, H: h, Color: c})
}

// Replay clears s and issues every recorded fill to it in order.
func (r *Recorder) Replay(s Surface) {
	s.Clear()
	for _, op := range r.Ops {
		s.FillRect(op.X, op.Y, op.W, op.H, op.Color)
	}
}

// CountColor returns how many recorded fills used c.
func (r *Recorder) CountColor(c color.RGBA) int {
	n := 0
	for _, op := range r.Ops {
		if op.Color == c {
			n++
		}
	}
	return n
}

// Ensure Recorder and Canvas satisfy Surface.
var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*Canvas)(nil)
)
