// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package fx

import "time"

// Timer is a one-shot countdown that every finite effect delegates its time
// bookkeeping to. The zero value is a zero-duration timer, done from birth.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
}

// NewTimer returns a countdown over d. Negative durations are treated as
// zero.
func NewTimer(d time.Duration) Timer {
	if d < 0 {
		d = 0
	}
	return Timer{duration: d}
}

// Tick consumes up to d from the countdown. Once the countdown completes
// with time to spare, the remainder is returned with ok=true. Consuming the
// quantum exactly, or not yet completing, returns (0, false). Ticking an
// already-finished timer passes the quantum straight through.
func (t *Timer) Tick(d time.Duration) (leftover time.Duration, ok bool) {
	if d < 0 {
		d = 0
	}
	total := t.elapsed + d
	if total < t.duration {
		t.elapsed = total
		return 0, false
	}
	t.elapsed = t.duration
	leftover = total - t.duration
	if leftover <= 0 {
		return 0, false
	}
	return leftover, true
}

// Progress reports completion in [0, 1]. A zero-duration timer is always
// complete.
func (t *Timer) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(t.elapsed) / float64(t.duration)
	if p > 1 {
		p = 1
	}
	return p
}

// Started reports whether any time has been consumed.
func (t *Timer) Started() bool { return t.elapsed > 0 }

// Done reports whether the countdown has completed.
func (t *Timer) Done() bool { return t.elapsed >= t.duration }

// Reset rewinds the countdown to its start.
func (t *Timer) Reset() { t.elapsed = 0 }

// Duration returns the configured countdown length.
func (t *Timer) Duration() time.Duration { return t.duration }
