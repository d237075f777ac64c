package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseArrowKeys(t *testing.T) {
	now := time.Now()
	var ks keyState
	parseBytes(&ks, []byte("\x1b[A\x1b[C"), now)

	in := ks.snapshot(now)
	if !in.Up || !in.Right {
		t.Errorf("expected Up and Right held, got %+v", in)
	}
	if in.Down || in.Left || in.Escape {
		t.Errorf("unexpected keys held: %+v", in)
	}
}

func TestParseLettersAndFire(t *testing.T) {
	now := time.Now()
	var ks keyState
	parseBytes(&ks, []byte("as \r?"), now)

	in := ks.snapshot(now)
	if !in.Left || !in.Down || !in.Fire || !in.Enter {
		t.Errorf("expected Left, Down, Fire, Enter held, got %+v", in)
	}
	if in.Up || in.Right || in.Quit {
		t.Errorf("unexpected keys held: %+v", in)
	}
}

func TestLoneEscape(t *testing.T) {
	now := time.Now()
	var ks keyState
	parseBytes(&ks, []byte("\x1b"), now)

	if in := ks.snapshot(now); !in.Escape {
		t.Errorf("lone ESC should register as Escape, got %+v", in)
	}
}

func TestKeyHoldExpires(t *testing.T) {
	now := time.Now()
	var ks keyState
	parseBytes(&ks, []byte(" "), now)

	if in := ks.snapshot(now.Add(keyHoldDuration / 2)); !in.Fire {
		t.Errorf("fire should still be held within hold duration")
	}
	if in := ks.snapshot(now.Add(keyHoldDuration)); in.Fire {
		t.Errorf("fire should be released after hold duration")
	}
}

func TestReadInputFromStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w")))

	deadline := time.Now().Add(time.Second)
	var in Input
	for time.Now().Before(deadline) {
		in = ReadInput(s)
		if in.Any() {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if !in.Up {
		t.Fatalf("expected Up from stream, got %+v", in)
	}

	ResetKeyInput(s)
	if in := ReadInput(s); in.Up {
		t.Errorf("Up should be cleared after ResetKeyInput")
	}
}

func TestStreamClosedAfterEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		ReadInput(s)
		if s.Closed() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("stream should report closed after EOF")
}
