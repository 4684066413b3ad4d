package health

import "testing"

func TestClamping(t *testing.T) {
	h := New(100)
	if h.Value() != 100 || !h.Full() {
		t.Fatalf("expected a new pool to start full, got %v", h.Value())
	}

	h.Deplete(250)
	if h.Value() != 0 || !h.Empty() {
		t.Fatalf("expected clamp at zero, got %v", h.Value())
	}

	h.Recover(40)
	h.Recover(500)
	if h.Value() != 100 {
		t.Fatalf("expected clamp at max, got %v", h.Value())
	}
}

func TestBoundaryEventsFireOnce(t *testing.T) {
	h := New(100)

	reachedMax, reachedMin := 0, 0
	h.OnReachedMax(func() { reachedMax++ })
	h.OnReachedMin(func() { reachedMin++ })

	h.Deplete(100)
	h.Deplete(10) // already pinned at zero
	if reachedMin != 1 {
		t.Fatalf("expected one min event, got %d", reachedMin)
	}

	h.Recover(100)
	h.Recover(10) // already pinned at max
	if reachedMax != 1 {
		t.Fatalf("expected one max event, got %d", reachedMax)
	}

	// leaving and re-reaching a boundary re-arms its event
	h.Deplete(100)
	h.Recover(1)
	h.Deplete(1)
	if reachedMin != 3 {
		t.Fatalf("expected re-armed min events, got %d", reachedMin)
	}
}

func TestInvincibleDropsDepletion(t *testing.T) {
	h := New(100)

	depleted := 0
	h.OnDepleted(func(float64) { depleted++ })

	h.Invincible = true
	h.Deplete(30)
	if h.Value() != 100 || depleted != 0 {
		t.Fatalf("depletion must be dropped while invincible, got %v", h.Value())
	}

	h.Invincible = false
	h.Deplete(30)
	if h.Value() != 70 || depleted != 1 {
		t.Fatalf("expected 70 hp after the shield drops, got %v", h.Value())
	}
}

func TestChangeObservers(t *testing.T) {
	h := New(50)

	var values []float64
	h.OnChanged(func(v float64) { values = append(values, v) })

	h.Deplete(20)
	h.Recover(0)  // no-op amounts never fire
	h.Deplete(-5) // nor do negative ones
	h.Recover(10)

	if len(values) != 2 || values[0] != 30 || values[1] != 40 {
		t.Fatalf("expected change values [30 40], got %v", values)
	}
}
