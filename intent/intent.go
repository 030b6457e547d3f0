// Package intent estimates the input device and gesture velocity behind
// scroll events.
//
// The classifier is a best-effort heuristic with no real-time guarantee: it
// samples wheel deltas over time, smooths velocity across a small sliding
// window, and flags high-velocity "flick" gestures so snap animations can
// adapt their duration. Touch gestures use an independent, unsmoothed path.
package intent

import (
	"math"
	"time"

	"github.com/lixenwraith/snapscroll/document"
)

// DeviceType is the estimated input device
type DeviceType uint8

const (
	DeviceUnset DeviceType = iota
	DeviceMouse
	DeviceTouch
	DeviceTrackpad
)

// String returns human-readable device name
func (d DeviceType) String() string {
	switch d {
	case DeviceMouse:
		return "mouse"
	case DeviceTouch:
		return "touch"
	case DeviceTrackpad:
		return "trackpad"
	default:
		return "unset"
	}
}

// DeltaMode discriminates the unit of wheel deltas
type DeltaMode uint8

const (
	DeltaPixel DeltaMode = iota
	DeltaLine
	DeltaPage
)

// WheelEvent is one raw wheel sample
type WheelEvent struct {
	DeltaX float64
	DeltaY float64
	Mode   DeltaMode
	Time   time.Time
}

// Nominal unit sizes for non-pixel delta modes
const (
	lineUnits = 16.0
	pageUnits = 384.0
)

// AxisDelta returns the event's delta along axis, normalized to units
func (e WheelEvent) AxisDelta(axis document.Axis) float64 {
	d := e.DeltaY
	if axis == document.AxisHorizontal {
		d = e.DeltaX
	}
	switch e.Mode {
	case DeltaLine:
		return d * lineUnits
	case DeltaPage:
		return d * pageUnits
	default:
		return d
	}
}

const (
	// Pixel-mode deltas below this on both axes indicate a trackpad
	trackpadDeltaCutoff = 50.0

	// Wheel samples separated by more than this are unrelated input
	maxSampleGap = 100 * time.Millisecond

	// Sliding window size for velocity smoothing
	windowSize = 5

	// Flick thresholds in units per millisecond
	trackpadFlickThreshold = 2.0
	defaultFlickThreshold  = 1.0
)

// Classifier accumulates wheel and touch samples for one controller
// One instance per controller; instances share no state
type Classifier struct {
	axis document.Axis

	device   DeviceType
	velocity float64
	isFlick  bool

	// Sliding window of accepted wheel velocities, oldest first
	samples    []float64
	lastSample time.Time

	touchActive bool
	touchOrigin float64
	touchStart  time.Time
}

// NewClassifier creates a classifier for the given scroll axis
func NewClassifier(axis document.Axis) *Classifier {
	return &Classifier{
		axis:    axis,
		samples: make([]float64, 0, windowSize),
	}
}

// Device returns the latest device estimate
func (c *Classifier) Device() DeviceType { return c.device }

// Velocity returns the latest smoothed velocity in units per millisecond
func (c *Classifier) Velocity() float64 { return c.velocity }

// IsFlick reports whether the latest velocity exceeds the device threshold
func (c *Classifier) IsFlick() bool { return c.isFlick }

// ObserveWheel consumes one raw wheel sample
//
// Device classification: pixel-mode deltas under the trackpad cutoff on
// both axes mean trackpad; a larger pixel delta or any line/page delta
// means mouse. Velocity updates only when the gap since the previous
// sample is inside (0, 100ms); stale samples keep the prior velocity
func (c *Classifier) ObserveWheel(e WheelEvent) {
	if e.Mode == DeltaPixel &&
		math.Abs(e.DeltaX) < trackpadDeltaCutoff &&
		math.Abs(e.DeltaY) < trackpadDeltaCutoff {
		c.device = DeviceTrackpad
	} else {
		c.device = DeviceMouse
	}

	prev := c.lastSample
	c.lastSample = e.Time

	if prev.IsZero() {
		return
	}
	elapsed := e.Time.Sub(prev)
	if elapsed <= 0 || elapsed >= maxSampleGap {
		return
	}

	v := math.Abs(e.AxisDelta(c.axis)) / (float64(elapsed) / float64(time.Millisecond))
	if len(c.samples) == windowSize {
		c.samples = append(c.samples[:0], c.samples[1:]...)
	}
	c.samples = append(c.samples, v)

	var sum float64
	for _, s := range c.samples {
		sum += s
	}
	c.velocity = sum / float64(len(c.samples))
	c.isFlick = c.velocity > c.flickThreshold()
}

func (c *Classifier) flickThreshold() float64 {
	if c.device == DeviceTrackpad {
		return trackpadFlickThreshold
	}
	return defaultFlickThreshold
}

// --- Touch path: instantaneous, no windowed smoothing ---

// TouchStart begins a touch gesture at pos along the scroll axis
// Velocity and flick state reset for the new gesture
func (c *Classifier) TouchStart(pos float64, t time.Time) {
	c.device = DeviceTouch
	c.velocity = 0
	c.isFlick = false
	c.touchActive = true
	c.touchOrigin = pos
	c.touchStart = t
}

// TouchMove updates velocity from straight-line displacement since the
// gesture start over elapsed time
func (c *Classifier) TouchMove(pos float64, t time.Time) {
	if !c.touchActive {
		return
	}
	elapsed := t.Sub(c.touchStart)
	if elapsed <= 0 {
		return
	}
	c.velocity = math.Abs(pos-c.touchOrigin) / (float64(elapsed) / float64(time.Millisecond))
	c.isFlick = c.velocity > defaultFlickThreshold
}

// TouchEnd stops further updates; the last values remain readable
func (c *Classifier) TouchEnd() {
	c.touchActive = false
}
