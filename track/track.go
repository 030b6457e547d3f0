// Package track observes section visibility against the viewport and drives
// the section lifecycle: geometric state classes, threshold-gated activation
// with enter/leave callbacks, and the edge-triggered fully-visible event.
package track

import (
	"sort"

	"github.com/lixenwraith/snapscroll/section"
	"github.com/lixenwraith/snapscroll/viewport"
)

// ClassActive marks the currently active section element
const ClassActive = "section-active"

// FullyVisibleRatio is the edge for the dedicated fully-visible event
const FullyVisibleRatio = 0.99

// Entry is one visibility observation for a section
type Entry struct {
	// Ratio is the visible fraction of the section in [0,1]
	Ratio float64
	// Intersecting reports whether any part of the section is in view
	Intersecting bool
	// Start and End are the section bounds along the axis, document-relative
	Start, End float64
}

// Callbacks are the optional lifecycle handlers; unset handlers are skipped
type Callbacks struct {
	// OnEnter is the legacy combined handler, fired on every activation
	// after exactly one of OnFirstEnter / OnReEnter
	OnEnter        func(*section.Section)
	OnLeave        func(*section.Section)
	OnFirstEnter   func(*section.Section)
	OnReEnter      func(*section.Section)
	OnFullyVisible func(*section.Section)
}

// Tracker owns per-section visibility state for one controller
type Tracker struct {
	sections  []*section.Section
	vp        *viewport.Viewport
	threshold float64
	cb        Callbacks

	// Sampling thresholds; entries are delivered only when a section's
	// ratio crosses a step or its intersecting flag flips
	steps    []float64
	lastStep []int
	lastHit  []bool

	current      *section.Section
	disconnected bool
}

// New creates a tracker over a fixed section set
// threshold gates activation; it is folded into the sampling steps so the
// crossing itself is always observed
func New(sections []*section.Section, vp *viewport.Viewport, threshold float64, cb Callbacks) *Tracker {
	t := &Tracker{
		sections:  sections,
		vp:        vp,
		threshold: threshold,
		cb:        cb,
		steps:     samplingSteps(threshold),
		lastStep:  make([]int, len(sections)),
		lastHit:   make([]bool, len(sections)),
	}
	for i := range t.lastStep {
		t.lastStep[i] = -1
	}
	return t
}

// samplingSteps builds the fixed threshold list: quarter steps plus the
// activation threshold and the fully-visible edge
func samplingSteps(threshold float64) []float64 {
	base := []float64{0, 0.25, 0.5, 0.75, FullyVisibleRatio, 1}
	if threshold > 0 && threshold < 1 {
		base = append(base, threshold)
	}
	sort.Float64s(base)
	steps := base[:1]
	for _, v := range base[1:] {
		if v != steps[len(steps)-1] {
			steps = append(steps, v)
		}
	}
	return steps
}

func (t *Tracker) stepIndex(ratio float64) int {
	idx := 0
	for i, s := range t.steps {
		if ratio >= s {
			idx = i
		}
	}
	return idx
}

// Sections returns the tracked set in index order
func (t *Tracker) Sections() []*section.Section { return t.sections }

// Current returns the most recently activated section, nil before any
// activation. Multiple sections can be simultaneously active when geometry
// lets several ratios exceed the threshold; no exclusivity is enforced
func (t *Tracker) Current() *section.Section { return t.current }

// Recompute observes every section against the current viewport geometry,
// delivering entries only for sections whose sampled ratio step changed
func (t *Tracker) Recompute() {
	if t.disconnected {
		return
	}
	vpStart := t.vp.Offset()
	vpEnd := vpStart + t.vp.Extent()

	for i, s := range t.sections {
		start := s.Element.Offset
		end := s.Element.End()

		visStart := start
		if vpStart > visStart {
			visStart = vpStart
		}
		visEnd := end
		if vpEnd < visEnd {
			visEnd = vpEnd
		}
		vis := visEnd - visStart
		if vis < 0 {
			vis = 0
		}

		ratio := 0.0
		if extent := end - start; extent > 0 {
			ratio = vis / extent
		}
		hit := vis > 0

		step := t.stepIndex(ratio)
		if step == t.lastStep[i] && hit == t.lastHit[i] {
			continue
		}
		t.lastStep[i] = step
		t.lastHit[i] = hit

		t.Observe(s, Entry{Ratio: ratio, Intersecting: hit, Start: start, End: end})
	}
}

// Observe applies one visibility entry to a section: ratio bookkeeping,
// geometric lifecycle state, activation transitions and the fully-visible
// edge. Exposed so hosts and tests can inject observations directly
func (t *Tracker) Observe(s *section.Section, e Entry) {
	if t.disconnected {
		return
	}
	s.VisibilityRatio = e.Ratio

	t.setLifecycleState(s, t.lifecycleState(e))

	// Fully-visible is edge-triggered: callback on the false→true edge
	// only, silent reset on the way down
	if e.Ratio >= FullyVisibleRatio {
		if !s.WasFullyVisible {
			s.WasFullyVisible = true
			emit(t.cb.OnFullyVisible, s)
		}
	} else {
		s.WasFullyVisible = false
	}

	activeNow := e.Ratio >= t.threshold && e.Intersecting
	switch {
	case activeNow && !s.IsActive:
		s.IsActive = true
		t.current = s
		s.Element.AddClass(ClassActive)
		if !s.HasEnteredBefore {
			s.HasEnteredBefore = true
			emit(t.cb.OnFirstEnter, s)
		} else {
			emit(t.cb.OnReEnter, s)
		}
		emit(t.cb.OnEnter, s)
	case !activeNow && s.IsActive:
		s.IsActive = false
		s.Element.RemoveClass(ClassActive)
		emit(t.cb.OnLeave, s)
	}
}

// lifecycleState derives geometric position relative to the viewport,
// independent of the activation threshold
func (t *Tracker) lifecycleState(e Entry) section.LifecycleState {
	vpStart := t.vp.Offset()
	vpEnd := vpStart + t.vp.Extent()
	switch {
	case e.Start >= vpEnd:
		return section.StateUpcoming
	case e.End <= vpStart:
		return section.StatePassed
	default:
		return section.StateActive
	}
}

func (t *Tracker) setLifecycleState(s *section.Section, next section.LifecycleState) {
	if s.State == next && s.Element.HasClass(next.Class()) {
		return
	}
	s.Element.RemoveClass(s.State.Class())
	s.State = next
	s.Element.AddClass(next.Class())
}

// Disconnect stops observation and clears every marker the tracker applied:
// the active and state classes on each element and the IsActive flag, so no
// section reads as active after teardown
func (t *Tracker) Disconnect() {
	if t.disconnected {
		return
	}
	t.disconnected = true
	for _, s := range t.sections {
		s.IsActive = false
		s.Element.RemoveClass(ClassActive)
		s.Element.RemoveClass(s.State.Class())
	}
	t.current = nil
}

func emit(cb func(*section.Section), s *section.Section) {
	if cb != nil {
		cb(s)
	}
}
