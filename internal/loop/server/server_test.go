package server

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestHub() *Hub {
	return NewHub(log.New(io.Discard))
}

func TestRegisterAndUnregister(t *testing.T) {
	h := newTestHub()

	a := h.RegisterSession("alice")
	b := h.RegisterSession("bob")
	if a.ID == b.ID {
		t.Fatalf("session ids must be unique")
	}
	h.step()

	if got := h.GetSnapshot().Players; got != 2 {
		t.Fatalf("expected 2 players, got %d", got)
	}

	h.UnregisterSession(a.ID)
	h.step()

	if got := h.GetSnapshot().Players; got != 1 {
		t.Errorf("expected 1 player after unregister, got %d", got)
	}
	if _, ok := <-a.EventsCh; ok {
		t.Errorf("events channel should be closed after unregister")
	}
}

func TestReportScoreUpdatesLeaderboard(t *testing.T) {
	h := newTestHub()
	a := h.RegisterSession("alice")
	b := h.RegisterSession("bob")
	h.step()

	h.ReportScore(a.ID, 120)
	h.ReportScore(b.ID, 340)
	h.ReportScore(a.ID, 200)
	h.step()

	scores := h.GetSnapshot().TopScores
	want := []struct {
		user  string
		score int
	}{{"bob", 340}, {"alice", 200}, {"alice", 120}}
	if len(scores) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(scores))
	}
	for i, w := range want {
		if scores[i].Username != w.user || scores[i].Score != w.score {
			t.Errorf("entry %d: got %s/%d, want %s/%d", i, scores[i].Username, scores[i].Score, w.user, w.score)
		}
	}
}

func TestLeaderboardLimitAndTies(t *testing.T) {
	b := NewLeaderboard(3)
	b.Add("a", 10)
	b.Add("b", 30)
	b.Add("c", 30)
	if !b.Add("d", 20) {
		t.Fatalf("20 should displace the lowest entry")
	}
	if b.Add("e", 20) {
		t.Errorf("a score equal to the lowest entry on a full board should not enter")
	}

	got := b.Entries()
	names := []string{got[0].Username, got[1].Username, got[2].Username}
	if names[0] != "b" || names[1] != "c" || names[2] != "d" {
		t.Errorf("unexpected order %v", names)
	}

	// Entries is a copy.
	got[0].Score = 0
	if b.Entries()[0].Score != 30 {
		t.Errorf("mutating Entries result must not affect the board")
	}
}

func TestShutdownNotifiesSessions(t *testing.T) {
	h := newTestHub()
	a := h.RegisterSession("alice")
	h.step()

	done := make(chan struct{})
	go func() {
		h.Shutdown(5 * time.Second)
		close(done)
	}()

	select {
	case ev := <-a.EventsCh:
		if ev.Type != EventServerShutdown {
			t.Fatalf("expected shutdown event, got %v", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatalf("session was not notified")
	}

	h.UnregisterSession(a.ID)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("shutdown should return once sessions disconnect")
	}
}

func TestShutdownTimeout(t *testing.T) {
	h := newTestHub()
	h.RegisterSession("alice")
	h.step()

	begin := time.Now()
	h.Shutdown(300 * time.Millisecond)
	if elapsed := time.Since(begin); elapsed < 300*time.Millisecond {
		t.Errorf("shutdown returned before the timeout: %v", elapsed)
	}
}
