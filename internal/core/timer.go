package core

import "time"

// DefaultFPS is the rate a Pacer falls back to when given a non-positive one.
const DefaultFPS = 10

// IntervalForFPS converts a frame rate into the minimum spacing between
// generations. The nanosecond target is truncated to 32 bits and then to
// whole milliseconds, so 60 fps yields 16ms rather than 16.67ms.
func IntervalForFPS(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	ns := uint32(1_000_000_000.0 / float64(fps))
	return time.Duration(time.Duration(ns).Milliseconds()) * time.Millisecond
}

// Pacer gates generation advances to a configured frame rate. The clock is
// supplied by the caller on every query.
type Pacer struct {
	fps      int
	interval time.Duration
	last     time.Time
}

// NewPacer constructs a Pacer targeting the given FPS.
func NewPacer(fps int) *Pacer {
	p := &Pacer{}
	p.SetRate(fps)
	return p
}

// SetRate changes the target frame rate. Non-positive rates fall back to
// DefaultFPS.
func (p *Pacer) SetRate(fps int) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	p.fps = fps
	p.interval = IntervalForFPS(fps)
}

// FPS returns the active frame rate.
func (p *Pacer) FPS() int { return p.fps }

// Interval returns the minimum spacing between advances.
func (p *Pacer) Interval() time.Duration { return p.interval }

// TryAdvance reports whether enough time has elapsed since the last accepted
// advance. On success now becomes the new reference point; otherwise the
// Pacer is left untouched.
func (p *Pacer) TryAdvance(now time.Time) bool {
	if !p.last.IsZero() {
		elapsed := time.Duration(now.Sub(p.last).Milliseconds()) * time.Millisecond
		if elapsed < p.interval {
			return false
		}
	}
	p.last = now
	return true
}

// Reset forgets the last advance so the next TryAdvance succeeds.
func (p *Pacer) Reset() { p.last = time.Time{} }
