package track

import (
	"testing"

	"github.com/lixenwraith/snapscroll/document"
	"github.com/lixenwraith/snapscroll/section"
	"github.com/lixenwraith/snapscroll/viewport"
)

// fixture builds three 1000-unit sections at offsets 0, 1000, 2000 under a
// 1000-unit viewport
func fixture(cb Callbacks) ([]*section.Section, *viewport.Viewport, *Tracker) {
	root := document.NewElement("root")
	sections := make([]*section.Section, 3)
	for i := 0; i < 3; i++ {
		el := document.NewElement("section")
		el.Offset = float64(i) * 1000
		el.Extent = 1000
		root.AppendChild(el)
		sections[i] = section.New(el, i)
	}
	vp := viewport.New(document.AxisVertical, 1000, 3000)
	return sections, vp, New(sections, vp, 0.5, cb)
}

func scrollAndRecompute(vp *viewport.Viewport, tr *Tracker, pos float64) {
	vp.ScrollTo(pos)
	if vp.ConsumeDirty() {
		tr.Recompute()
	}
}

func TestLifecycleStateMonotonic(t *testing.T) {
	sections, vp, tr := fixture(Callbacks{})
	s1 := sections[1]

	var states []section.LifecycleState
	record := func() {
		if len(states) == 0 || states[len(states)-1] != s1.State {
			states = append(states, s1.State)
		}
	}

	for pos := 0.0; pos <= 2000; pos += 100 {
		scrollAndRecompute(vp, tr, pos)
		record()
	}

	want := []section.LifecycleState{
		section.StateUpcoming, section.StateActive, section.StatePassed,
	}
	if len(states) != len(want) {
		t.Fatalf("state sequence %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("state sequence %v, want %v", states, want)
		}
	}
	if !s1.Element.HasClass("state-passed") {
		t.Error("final state class missing")
	}
	if s1.Element.HasClass("state-active") || s1.Element.HasClass("state-upcoming") {
		t.Error("stale state classes not removed")
	}
}

func TestFirstEnterReEnterExclusive(t *testing.T) {
	var first, re, enter, leave int
	sections, vp, tr := fixture(Callbacks{
		OnFirstEnter: func(*section.Section) { first++ },
		OnReEnter:    func(*section.Section) { re++ },
		OnEnter:      func(*section.Section) { enter++ },
		OnLeave:      func(*section.Section) { leave++ },
	})
	s0 := sections[0]

	// First activation
	scrollAndRecompute(vp, tr, 0)
	if !s0.IsActive || !s0.HasEnteredBefore {
		t.Fatal("section 0 not activated at offset 0")
	}
	// Leave, then re-enter
	scrollAndRecompute(vp, tr, 1000)
	if s0.IsActive {
		t.Fatal("section 0 still active out of view")
	}
	scrollAndRecompute(vp, tr, 0)

	// Activations so far: s0 first, s1 first (offset 1000), s0 re-enter
	if first != 2 {
		t.Errorf("first-enter fired %d times, want 2", first)
	}
	if re != 1 {
		t.Errorf("re-enter fired %d times, want 1", re)
	}
	// The legacy combined handler fires on every activation
	if enter != first+re {
		t.Errorf("combined enter fired %d times, want %d", enter, first+re)
	}
	if leave != 2 {
		t.Errorf("leave fired %d times, want 2 (s0 out, s1 out)", leave)
	}
}

func TestFullyVisibleEdgeTriggered(t *testing.T) {
	var fully int
	sections, vp, tr := fixture(Callbacks{
		OnFullyVisible: func(*section.Section) { fully++ },
	})
	s0 := sections[0]

	scrollAndRecompute(vp, tr, 0)
	if fully != 1 || !s0.WasFullyVisible {
		t.Fatalf("fully-visible fired %d times at full view, want 1", fully)
	}

	// Small movements above the edge must not re-fire: 0.99 exactly
	scrollAndRecompute(vp, tr, 10)
	if fully != 1 {
		t.Fatalf("fully-visible re-fired without dropping below the edge (%d)", fully)
	}

	// Drop below, flag silently resets, no extra callback
	scrollAndRecompute(vp, tr, 500)
	if s0.WasFullyVisible {
		t.Error("WasFullyVisible not reset below the edge")
	}
	if fully != 1 {
		t.Errorf("callback fired on the downward edge (%d)", fully)
	}

	// Back to full view: exactly one more
	scrollAndRecompute(vp, tr, 0)
	if fully != 2 {
		t.Errorf("fully-visible fired %d times, want 2", fully)
	}
}

func TestMultipleActiveSectionsAllowed(t *testing.T) {
	sections, vp, tr := fixture(Callbacks{})

	// At offset 500 both section 0 and section 1 show ratio 0.5, which
	// meets the 0.5 threshold; no exclusivity is enforced
	scrollAndRecompute(vp, tr, 0)
	scrollAndRecompute(vp, tr, 500)
	if !sections[0].IsActive || !sections[1].IsActive {
		t.Errorf("active flags = %v, %v; want both true",
			sections[0].IsActive, sections[1].IsActive)
	}
	if tr.Current() != sections[1] {
		t.Error("current is not the most recently activated section")
	}
	if !sections[0].Element.HasClass(ClassActive) || !sections[1].Element.HasClass(ClassActive) {
		t.Error("active marker class missing")
	}
}

func TestObserveDirectInjection(t *testing.T) {
	var entered *section.Section
	sections, _, tr := fixture(Callbacks{
		OnEnter: func(s *section.Section) { entered = s },
	})
	s2 := sections[2]

	tr.Observe(s2, Entry{Ratio: 0.8, Intersecting: true, Start: 2000, End: 3000})
	if entered != s2 {
		t.Fatal("injected entry did not activate the section")
	}
	if s2.VisibilityRatio != 0.8 {
		t.Errorf("ratio %v, want 0.8", s2.VisibilityRatio)
	}
}

func TestDisconnectClearsClasses(t *testing.T) {
	sections, vp, tr := fixture(Callbacks{})
	scrollAndRecompute(vp, tr, 0)

	tr.Disconnect()
	for _, s := range sections {
		if s.IsActive {
			t.Errorf("section %d: IsActive survived disconnect", s.Index)
		}
		if s.Element.HasClass(ClassActive) {
			t.Errorf("section %d: active marker survived disconnect", s.Index)
		}
		for _, c := range s.Element.Classes() {
			if c == "state-upcoming" || c == "state-active" || c == "state-passed" {
				t.Errorf("section %d: state class %q survived disconnect", s.Index, c)
			}
		}
	}
	if tr.Current() != nil {
		t.Error("current section survived disconnect")
	}

	// Further observation is a no-op
	tr.Observe(sections[0], Entry{Ratio: 1, Intersecting: true, Start: 0, End: 1000})
	if sections[0].IsActive {
		t.Error("tracker observed after disconnect")
	}
}

func TestRecomputeCoalescesSteps(t *testing.T) {
	var enters int
	_, vp, tr := fixture(Callbacks{
		OnEnter: func(*section.Section) { enters++ },
	})
	scrollAndRecompute(vp, tr, 0)

	// Sub-step movements deliver no duplicate activations
	for pos := 0.0; pos < 40; pos += 1 {
		scrollAndRecompute(vp, tr, pos)
	}
	if enters != 1 {
		t.Errorf("enter fired %d times across sub-step movement, want 1", enters)
	}
}
