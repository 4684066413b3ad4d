// Package health implements the controller's clamped hit-point model with
// observer callbacks for value changes and boundary crossings.
package health

// Health is a hit-point value clamped to [0, Max]. Depletion is dropped while
// Invincible is set. The ReachedMax/ReachedMin callbacks fire exactly once on
// the step the boundary is newly reached, not while pinned at it.
type Health struct {
	Max        float64
	Invincible bool

	value float64
	atMax bool
	atMin bool

	onChanged []func(value float64)
	onRecover []func(amount float64)
	onDeplete []func(amount float64)
	onReached []func() // max
	onExhaust []func() // min
}

func New(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, value: max, atMax: true}
}

func (h *Health) Value() float64 { return h.value }
func (h *Health) Full() bool     { return h.value >= h.Max }
func (h *Health) Empty() bool    { return h.value <= 0 }

func (h *Health) OnChanged(fn func(value float64)) { h.onChanged = append(h.onChanged, fn) }
func (h *Health) OnRecovered(fn func(amount float64)) { h.onRecover = append(h.onRecover, fn) }
func (h *Health) OnDepleted(fn func(amount float64)) { h.onDeplete = append(h.onDeplete, fn) }
func (h *Health) OnReachedMax(fn func()) { h.onReached = append(h.onReached, fn) }
func (h *Health) OnReachedMin(fn func()) { h.onExhaust = append(h.onExhaust, fn) }

// Recover raises the value by amount, clamped to Max.
func (h *Health) Recover(amount float64) {
	if amount <= 0 {
		return
	}
	h.set(h.value + amount)
	for _, fn := range h.onRecover {
		fn(amount)
	}
}

// Deplete lowers the value by amount, clamped to 0. Dropped while invincible.
func (h *Health) Deplete(amount float64) {
	if amount <= 0 || h.Invincible {
		return
	}
	h.set(h.value - amount)
	for _, fn := range h.onDeplete {
		fn(amount)
	}
}

func (h *Health) set(v float64) {
	if v > h.Max {
		v = h.Max
	}
	if v < 0 {
		v = 0
	}
	if v == h.value {
		return
	}
	h.value = v
	for _, fn := range h.onChanged {
		fn(v)
	}

	if v >= h.Max {
		if !h.atMax {
			h.atMax = true
			for _, fn := range h.onReached {
				fn()
			}
		}
	} else {
		h.atMax = false
	}

	if v <= 0 {
		if !h.atMin {
			h.atMin = true
			for _, fn := range h.onExhaust {
				fn()
			}
		}
	} else {
		h.atMin = false
	}
}
