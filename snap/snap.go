// Package snap animates the viewport between scroll offsets.
//
// Animation is cooperative: the host render loop calls Tick each frame and
// the active animation advances by elapsed wall time through an easing
// curve. Starting a new scroll bumps a generation token, so frames belonging
// to a superseded animation are no-ops and two animations never fight over
// the scroll position.
package snap

import (
	"time"

	"github.com/lixenwraith/snapscroll/clock"
	"github.com/lixenwraith/snapscroll/easing"
	"github.com/lixenwraith/snapscroll/intent"
	"github.com/lixenwraith/snapscroll/section"
	"github.com/lixenwraith/snapscroll/viewport"
)

// Adaptive duration scaling; velocities are in units per millisecond
const (
	flickScale      = 0.6
	flickFloor      = 300 * time.Millisecond
	slowScale       = 1.2
	slowCeiling     = 1200 * time.Millisecond
	slowVelocityMax = 0.5
)

// Callbacks are the optional snap lifecycle handlers
// Both are skipped for navigations that do not target a tracked section
type Callbacks struct {
	OnSnapStart func(*section.Section)
	OnSnapEnd   func(*section.Section)
}

type animation struct {
	gen      uint64
	start    float64
	distance float64
	duration time.Duration
	began    time.Time
	ease     easing.Func
	section  *section.Section
}

// Animator drives time-based scroll animations for one viewport
type Animator struct {
	vp  *viewport.Viewport
	clk clock.Clock
	cb  Callbacks

	gen  uint64
	anim *animation
}

// New creates an animator over vp using clk as its time source
func New(vp *viewport.Viewport, clk clock.Clock, cb Callbacks) *Animator {
	return &Animator{vp: vp, clk: clk, cb: cb}
}

// Animating reports whether an animation is in flight
func (a *Animator) Animating() bool { return a.anim != nil }

// Start scrolls from the current offset to target over duration with ease
// sec is the targeted section, nil for anchor jumps to untracked elements;
// snap callbacks fire only when sec is non-nil. A zero duration performs an
// instantaneous jump with no animation frames. Any animation still in
// flight is superseded: its remaining frames become no-ops
func (a *Animator) Start(target float64, sec *section.Section, duration time.Duration, ease easing.Func) {
	a.gen++

	if sec != nil && a.cb.OnSnapStart != nil {
		a.cb.OnSnapStart(sec)
	}

	if duration <= 0 {
		a.anim = nil
		a.vp.ScrollTo(target)
		if sec != nil && a.cb.OnSnapEnd != nil {
			a.cb.OnSnapEnd(sec)
		}
		return
	}

	if ease == nil {
		ease = easing.Default()
	}
	a.anim = &animation{
		gen:      a.gen,
		start:    a.vp.Offset(),
		distance: target - a.vp.Offset(),
		duration: duration,
		began:    a.clk.Now(),
		ease:     ease,
		section:  sec,
	}
}

// Stop abandons any animation in flight without firing its end callback
func (a *Animator) Stop() {
	a.gen++
	a.anim = nil
}

// Tick advances the active animation to now
// Stale generations are discarded without touching the viewport
func (a *Animator) Tick(now time.Time) {
	anim := a.anim
	if anim == nil {
		return
	}
	if anim.gen != a.gen {
		a.anim = nil
		return
	}

	elapsed := now.Sub(anim.began)
	progress := float64(elapsed) / float64(anim.duration)
	if progress > 1 {
		progress = 1
	}
	if progress < 0 {
		progress = 0
	}

	a.vp.ScrollTo(anim.start + anim.distance*anim.ease(progress))

	if progress >= 1 {
		a.anim = nil
		if anim.section != nil && a.cb.OnSnapEnd != nil {
			a.cb.OnSnapEnd(anim.section)
		}
	}
}

// AdaptDuration scales base by the classifier's gesture estimate: flicks
// shorten the snap (floored), slow deliberate scrolling stretches it
// (capped); anything else keeps base unchanged
func AdaptDuration(base time.Duration, c *intent.Classifier) time.Duration {
	if c == nil {
		return base
	}
	if c.IsFlick() {
		d := time.Duration(float64(base) * flickScale)
		if d < flickFloor {
			d = flickFloor
		}
		return d
	}
	if v := c.Velocity(); v > 0 && v < slowVelocityMax {
		d := time.Duration(float64(base) * slowScale)
		if d > slowCeiling {
			d = slowCeiling
		}
		return d
	}
	return base
}
