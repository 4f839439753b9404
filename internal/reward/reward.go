// Package reward builds the "money rain" celebration shown when earnings grow.
package reward

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const (
	DefaultBills = 90
	HideAfter    = 3200 * time.Millisecond
	Symbol       = "💵"
)

// Bill is one falling banknote. X is a percentage of the viewport width,
// durations are milliseconds.
type Bill struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Size     float64 `json:"size"`
	Drift    float64 `json:"drift"`
	Rotate   float64 `json:"rotate"`
	Duration float64 `json:"duration"`
	Delay    float64 `json:"delay"`
	Opacity  float64 `json:"opacity"`
}

type Celebration struct {
	Seed        int64   `json:"seed"`
	Amount      float64 `json:"amount"`
	Label       string  `json:"label"`
	Symbol      string  `json:"symbol"`
	HideAfterMs int64   `json:"hideAfterMs"`
	Bills       []Bill  `json:"bills"`
}

// NewCelebration lays out DefaultBills bills for amount. rnd is not safe for
// concurrent use, callers serialise access to it.
func NewCelebration(amount float64, rnd *rand.Rand) *Celebration {
	seed := time.Now().UnixMilli()

	bills := make([]Bill, DefaultBills)
	for i := range bills {
		bills[i] = Bill{
			ID:       fmt.Sprintf("%d-%d-%x", seed, i, rnd.Uint32()),
			X:        between(rnd, 0, 100),
			Size:     between(rnd, 18, 52),
			Drift:    between(rnd, -160, 160),
			Rotate:   between(rnd, -220, 220),
			Duration: between(rnd, 1500, 2800),
			Delay:    between(rnd, 0, 380),
			Opacity:  between(rnd, 0.55, 1),
		}
	}

	return &Celebration{
		Seed:        seed,
		Amount:      amount,
		Label:       Label(amount),
		Symbol:      Symbol,
		HideAfterMs: HideAfter.Milliseconds(),
		Bills:       bills,
	}
}

// Label renders the "+ $12.50" caption, empty when there is no amount.
func Label(amount float64) string {
	if amount <= 0 {
		return ""
	}
	return fmt.Sprintf("+ $%.2f", amount)
}

func between(rnd *rand.Rand, min, max float64) float64 {
	return rnd.Float64()*(max-min) + min
}

// Tracker remembers the last total seen for one owner and reports strict
// increases.
type Tracker struct {
	mu     sync.Mutex
	primed bool
	owner  string
	last   float64
}

// Observe records owner's total. The first observation, and the first one
// after the owner changes, only primes the tracker.
func (t *Tracker) Observe(owner string, total float64) (float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev, primed := t.last, t.primed && t.owner == owner
	t.last, t.primed, t.owner = total, true, owner

	if !primed || total <= prev {
		return 0, false
	}

	return total - prev, true
}
