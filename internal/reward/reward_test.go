package reward

import (
	"math/rand"
	"testing"
)

func TestNewCelebrationRanges(t *testing.T) {
	c := NewCelebration(12.5, rand.New(rand.NewSource(1)))

	if len(c.Bills) != DefaultBills {
		t.Fatalf("got %d bills, want %d", len(c.Bills), DefaultBills)
	}
	if c.Label != "+ $12.50" || c.Symbol != Symbol || c.HideAfterMs != 3200 {
		t.Errorf("celebration = %+v", c)
	}

	in := func(v, min, max float64) bool { return v >= min && v < max }
	seen := map[string]bool{}
	for i, b := range c.Bills {
		if seen[b.ID] {
			t.Errorf("duplicate id %q", b.ID)
		}
		seen[b.ID] = true

		if !in(b.X, 0, 100) || !in(b.Size, 18, 52) || !in(b.Drift, -160, 160) || !in(b.Rotate, -220, 220) ||
			!in(b.Duration, 1500, 2800) || !in(b.Delay, 0, 380) || !in(b.Opacity, 0.55, 1) {
			t.Errorf("bill %d out of range: %+v", i, b)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label(0); got != "" {
		t.Errorf("Label(0) = %q", got)
	}
	if got := Label(5000); got != "+ $5000.00" {
		t.Errorf("Label(5000) = %q", got)
	}
}

func TestTracker(t *testing.T) {
	var tr Tracker

	steps := []struct {
		total     float64
		wantDelta float64
		wantFire  bool
	}{
		{100, 0, false},
		{100, 0, false},
		{150, 50, true},
		{120, 0, false},
		{125, 5, true},
	}

	for i, s := range steps {
		delta, fire := tr.Observe("alice", s.total)
		if delta != s.wantDelta || fire != s.wantFire {
			t.Errorf("step %d: Observe(%v) = %v, %v; want %v, %v", i, s.total, delta, fire, s.wantDelta, s.wantFire)
		}
	}
}

func TestTrackerRePrimesOnOwnerChange(t *testing.T) {
	var tr Tracker

	tr.Observe("alice", 100)
	if delta, fire := tr.Observe("bob", 250); fire {
		t.Errorf("owner change fired %v", delta)
	}
	if delta, fire := tr.Observe("bob", 260); !fire || delta != 10 {
		t.Errorf("Observe(bob, 260) = %v, %v; want 10, true", delta, fire)
	}
	if _, fire := tr.Observe("alice", 400); fire {
		t.Error("switching back should prime again")
	}
}
