// Package input turns a raw terminal byte stream into per-frame key snapshots.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses (and autorepeat), never releases.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Fire   bool
	Quit   bool
	Enter  bool
	Escape bool
	// Pressed holds the raw bytes received this frame (activity detection).
	Pressed []byte
}

// Any reports whether any byte arrived this frame.
func (in Input) Any() bool {
	return len(in.Pressed) > 0
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	up     time.Time
	down   time.Time
	left   time.Time
	right  time.Time
	fire   time.Time
	quit   time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool // Reader hit EOF or an error
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the keys held at this moment.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	parseBytes(&s.state, buf, now)
	in := s.state.snapshot(now)
	in.Pressed = buf
	return in
}

// Closed reports whether the underlying reader has ended.
// Only meaningful after ReadInput has drained the stream.
func (s *Stream) Closed() bool {
	return s.closed
}

// ResetKeyInput forgets all held keys, so a key pressed on one screen does
// not leak into the next.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// parseBytes updates key timestamps from a chunk of raw terminal input.
// Arrow keys arrive as CSI sequences (ESC [ A..D).
func parseBytes(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.up = now
				i += 2
				continue
			case 'B':
				state.down = now
				i += 2
				continue
			case 'C':
				state.right = now
				i += 2
				continue
			case 'D':
				state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(state, b, now)
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
// Unknown bytes are ignored.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.fire = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}

// snapshot builds the Input for time now: a key is held if seen within keyHoldDuration.
func (ks *keyState) snapshot(now time.Time) Input {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	return Input{
		Up:     held(ks.up),
		Down:   held(ks.down),
		Left:   held(ks.left),
		Right:  held(ks.right),
		Fire:   held(ks.fire),
		Quit:   held(ks.quit),
		Enter:  held(ks.enter),
		Escape: held(ks.escape),
	}
}
