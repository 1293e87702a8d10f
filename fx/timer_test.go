package fx

import (
	"testing"
	"time"
)

func TestTimerReportsLeftoverWhenFinishingEarly(t *testing.T) {
	tm := NewTimer(10 * time.Millisecond)
	leftover, ok := tm.Tick(12 * time.Millisecond)
	if !ok {
		t.Fatalf("expected completion with leftover")
	}
	if leftover != 2*time.Millisecond {
		t.Fatalf("expected 2ms leftover, got %v", leftover)
	}
	if !tm.Done() {
		t.Fatalf("timer should be done")
	}
}

func TestTimerExactConsumptionReportsNothingLeft(t *testing.T) {
	tm := NewTimer(10 * time.Millisecond)
	leftover, ok := tm.Tick(10 * time.Millisecond)
	if ok {
		t.Fatalf("consuming the quantum exactly should not report leftover, got %v", leftover)
	}
	if !tm.Done() {
		t.Fatalf("timer should be done after consuming its full duration")
	}
}

func TestTimerAccumulatesAcrossTicks(t *testing.T) {
	tm := NewTimer(10 * time.Millisecond)
	if _, ok := tm.Tick(4 * time.Millisecond); ok {
		t.Fatalf("timer finished too early")
	}
	if tm.Done() {
		t.Fatalf("timer done after 4 of 10 ms")
	}
	leftover, ok := tm.Tick(9 * time.Millisecond)
	if !ok || leftover != 3*time.Millisecond {
		t.Fatalf("expected (3ms, true), got (%v, %v)", leftover, ok)
	}
}

func TestTimerPassesQuantumThroughOnceDone(t *testing.T) {
	tm := NewTimer(5 * time.Millisecond)
	tm.Tick(5 * time.Millisecond)
	leftover, ok := tm.Tick(7 * time.Millisecond)
	if !ok || leftover != 7*time.Millisecond {
		t.Fatalf("done timer should pass the quantum through, got (%v, %v)", leftover, ok)
	}
}

func TestZeroDurationTimerIsBornDone(t *testing.T) {
	tm := NewTimer(0)
	if !tm.Done() {
		t.Fatalf("zero-duration timer should be done immediately")
	}
	if p := tm.Progress(); p != 1 {
		t.Fatalf("expected progress 1, got %v", p)
	}
}

func TestTimerProgressAndReset(t *testing.T) {
	tm := NewTimer(8 * time.Millisecond)
	tm.Tick(2 * time.Millisecond)
	if p := tm.Progress(); p != 0.25 {
		t.Fatalf("expected progress 0.25, got %v", p)
	}
	if !tm.Started() {
		t.Fatalf("timer should report started")
	}
	tm.Reset()
	if tm.Started() || tm.Progress() != 0 {
		t.Fatalf("reset should rewind the timer")
	}
}
