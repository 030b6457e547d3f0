package intent

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/snapscroll/document"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func wheelStream(c *Classifier, count int, delta float64, interval time.Duration) {
	now := t0
	for i := 0; i < count; i++ {
		c.ObserveWheel(WheelEvent{DeltaY: delta, Mode: DeltaPixel, Time: now})
		now = now.Add(interval)
	}
}

func TestWheelVelocityConvergence(t *testing.T) {
	c := NewClassifier(document.AxisVertical)

	// Constant-rate stream: 100 units every 16ms converges to 6.25 u/ms
	wheelStream(c, 6, 100, 16*time.Millisecond)

	if got := c.Velocity(); math.Abs(got-6.25) > 1e-9 {
		t.Errorf("velocity %v, want 6.25", got)
	}
	if c.Device() != DeviceMouse {
		t.Errorf("device %v, want mouse", c.Device())
	}
	if !c.IsFlick() {
		t.Error("IsFlick false at 6.25 u/ms on mouse threshold 1")
	}
}

func TestTrackpadClassification(t *testing.T) {
	c := NewClassifier(document.AxisVertical)

	c.ObserveWheel(WheelEvent{DeltaX: 3, DeltaY: 12, Mode: DeltaPixel, Time: t0})
	if c.Device() != DeviceTrackpad {
		t.Errorf("device %v, want trackpad for small pixel deltas", c.Device())
	}

	// One large delta flips the estimate to mouse
	c.ObserveWheel(WheelEvent{DeltaY: 120, Mode: DeltaPixel, Time: t0.Add(16 * time.Millisecond)})
	if c.Device() != DeviceMouse {
		t.Errorf("device %v, want mouse for large pixel delta", c.Device())
	}

	// Any non-pixel mode means mouse regardless of magnitude
	c.ObserveWheel(WheelEvent{DeltaY: 1, Mode: DeltaLine, Time: t0.Add(32 * time.Millisecond)})
	if c.Device() != DeviceMouse {
		t.Errorf("device %v, want mouse for line mode", c.Device())
	}
}

func TestTrackpadFlickThreshold(t *testing.T) {
	c := NewClassifier(document.AxisVertical)

	// 24 units / 16ms = 1.5 u/ms: over the mouse threshold, under trackpad's
	now := t0
	for i := 0; i < 6; i++ {
		c.ObserveWheel(WheelEvent{DeltaY: 24, Mode: DeltaPixel, Time: now})
		now = now.Add(16 * time.Millisecond)
	}
	if c.Device() != DeviceTrackpad {
		t.Fatalf("device %v, want trackpad", c.Device())
	}
	if math.Abs(c.Velocity()-1.5) > 1e-9 {
		t.Fatalf("velocity %v, want 1.5", c.Velocity())
	}
	if c.IsFlick() {
		t.Error("IsFlick true at 1.5 u/ms on trackpad threshold 2")
	}
}

func TestStaleSamplesDropped(t *testing.T) {
	c := NewClassifier(document.AxisVertical)
	wheelStream(c, 6, 100, 16*time.Millisecond)
	before := c.Velocity()

	// Gap >= 100ms: sample dropped, previous velocity persists
	c.ObserveWheel(WheelEvent{DeltaY: 5000, Mode: DeltaPixel, Time: t0.Add(10 * time.Second)})
	if c.Velocity() != before {
		t.Errorf("velocity changed to %v across a stale gap, want %v", c.Velocity(), before)
	}

	// Zero-elapsed sample is also rejected
	c.ObserveWheel(WheelEvent{DeltaY: 5000, Mode: DeltaPixel, Time: t0.Add(10 * time.Second)})
	if c.Velocity() != before {
		t.Errorf("velocity changed to %v on zero-elapsed sample", c.Velocity())
	}
}

func TestWindowEviction(t *testing.T) {
	c := NewClassifier(document.AxisVertical)

	// Five fast samples then five slow ones: the mean must forget the
	// fast ones entirely once the window has turned over
	now := t0
	for i := 0; i < 6; i++ {
		c.ObserveWheel(WheelEvent{DeltaY: 160, Mode: DeltaPixel, Time: now})
		now = now.Add(16 * time.Millisecond)
	}
	for i := 0; i < 5; i++ {
		c.ObserveWheel(WheelEvent{DeltaY: 16, Mode: DeltaPixel, Time: now})
		now = now.Add(16 * time.Millisecond)
	}
	if got := c.Velocity(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("velocity %v after window turnover, want 1.0", got)
	}
}

func TestHorizontalAxisDelta(t *testing.T) {
	c := NewClassifier(document.AxisHorizontal)
	now := t0
	for i := 0; i < 6; i++ {
		// Vertical delta must be ignored on the horizontal axis
		c.ObserveWheel(WheelEvent{DeltaX: 32, DeltaY: 999, Mode: DeltaPixel, Time: now})
		now = now.Add(16 * time.Millisecond)
	}
	if got := c.Velocity(); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("velocity %v, want 2.0 from horizontal delta", got)
	}
}

func TestLineModeNormalization(t *testing.T) {
	e := WheelEvent{DeltaY: 3, Mode: DeltaLine}
	if got := e.AxisDelta(document.AxisVertical); got != 48 {
		t.Errorf("line delta %v, want 48", got)
	}
	e = WheelEvent{DeltaX: 1, Mode: DeltaPage}
	if got := e.AxisDelta(document.AxisHorizontal); got != 384 {
		t.Errorf("page delta %v, want 384", got)
	}
}

func TestTouchPath(t *testing.T) {
	c := NewClassifier(document.AxisVertical)
	wheelStream(c, 6, 100, 16*time.Millisecond)
	if !c.IsFlick() {
		t.Fatal("precondition: wheel flick expected")
	}

	// Touch start resets velocity and flick for the new gesture
	c.TouchStart(500, t0)
	if c.Device() != DeviceTouch {
		t.Errorf("device %v, want touch", c.Device())
	}
	if c.Velocity() != 0 || c.IsFlick() {
		t.Error("touch start did not reset velocity/flick")
	}

	// 80 units over 40ms = 2 u/ms, over the 1 u/ms touch threshold
	c.TouchMove(420, t0.Add(40*time.Millisecond))
	if math.Abs(c.Velocity()-2.0) > 1e-9 {
		t.Errorf("velocity %v, want 2.0", c.Velocity())
	}
	if !c.IsFlick() {
		t.Error("IsFlick false at 2 u/ms on touch")
	}

	// After touch end, moves stop updating but values stay readable
	c.TouchEnd()
	c.TouchMove(0, t0.Add(80*time.Millisecond))
	if math.Abs(c.Velocity()-2.0) > 1e-9 {
		t.Errorf("velocity %v changed after TouchEnd", c.Velocity())
	}
}
