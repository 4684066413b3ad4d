package anim

import "testing"

func timingClip(name string, frames, fps int, loop bool) *Clip {
	return &Clip{Name: name, FrameCount: frames, FPS: fps, Loop: loop}
}

func TestNormalizedTime(t *testing.T) {
	p := NewPlayer(
		timingClip("swing", 10, 20, false), // 0.5s
		timingClip("run", 10, 20, true),
	)

	p.Play("swing")
	p.Update(0.25)
	if got := p.NormalizedTime(); got != 0.5 {
		t.Fatalf("expected 0.5 halfway through, got %v", got)
	}
	p.Update(1.0)
	if got := p.NormalizedTime(); got != 1 {
		t.Fatalf("non-looping clips clamp at 1, got %v", got)
	}

	p.Play("run")
	p.Update(0.6)
	if got := p.NormalizedTime(); got != 0.6/0.5-1 {
		t.Fatalf("looping clips wrap, got %v", got)
	}
}

func TestPlayRestartsAndResetsSpeed(t *testing.T) {
	p := NewPlayer(timingClip("swing", 10, 20, false))

	p.Play("swing")
	p.SetSpeed(0)
	p.Update(0.25)
	if got := p.NormalizedTime(); got != 0 {
		t.Fatalf("zero speed must freeze playback, got %v", got)
	}

	p.Play("swing")
	p.Update(0.25)
	if got := p.NormalizedTime(); got != 0.5 {
		t.Fatalf("replay must reset speed to 1, got %v", got)
	}
	if p.CurrentClip() != "swing" {
		t.Fatalf("expected swing playing, got %q", p.CurrentClip())
	}
}

func TestFrameCallbacksFireOnCrossing(t *testing.T) {
	p := NewPlayer(timingClip("swing", 10, 20, false))

	fired := 0
	p.OnFrame("swing", 3, func() { fired++ })

	p.Play("swing")
	p.Update(0.05) // frame 1
	if fired != 0 {
		t.Fatalf("callback fired before its frame")
	}

	// a large step crosses frames 2..6 in one update
	p.Update(0.25)
	if fired != 1 {
		t.Fatalf("expected the crossed frame to fire once, got %d", fired)
	}

	p.Update(1.0) // run the clip out
	if fired != 1 {
		t.Fatalf("callback must not refire within one playthrough, got %d", fired)
	}

	p.Play("swing")
	p.Update(1.0)
	if fired != 2 {
		t.Fatalf("replay re-arms clip events, got %d", fired)
	}
}

func TestFrameCallbacksWrapOnLoops(t *testing.T) {
	p := NewPlayer(timingClip("run", 4, 20, true)) // 0.2s loop

	fired := 0
	p.OnFrame("run", 1, func() { fired++ })

	p.Play("run")
	p.Update(0.3) // crosses frame 1 in the first and second loop
	if fired != 2 {
		t.Fatalf("expected the loop to refire the frame event, got %d", fired)
	}
}

func TestUnknownClipStopsPlayback(t *testing.T) {
	p := NewPlayer(timingClip("swing", 10, 20, false))
	p.Play("swing")
	p.Play("missing")
	if p.CurrentClip() != "" {
		t.Fatalf("unknown clips stop playback, got %q", p.CurrentClip())
	}
	if p.NormalizedTime() != 0 {
		t.Fatalf("stopped playback reports zero progress")
	}
	p.Update(0.1) // no-op while stopped
}
