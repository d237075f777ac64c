package main

import "testing"

func TestSessionEnv(t *testing.T) {
	env := []string{"LANG=C", "COLORTERM=truecolor", "COLORTERMX=no"}

	if got := sessionEnv(env, "COLORTERM"); got != "truecolor" {
		t.Errorf("sessionEnv: got %q, want truecolor", got)
	}
	if got := sessionEnv(env, "TERM"); got != "" {
		t.Errorf("sessionEnv missing key: got %q, want empty", got)
	}
}

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	s.update(120, 40)

	w, h, err := s.getSize()
	if err != nil || w != 120 || h != 40 {
		t.Errorf("getSize: got %dx%d err=%v, want 120x40", w, h, err)
	}
}
