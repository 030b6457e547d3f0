package snapscroll

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snapscroll/chrome"
	"github.com/lixenwraith/snapscroll/clock"
	"github.com/lixenwraith/snapscroll/document"
	"github.com/lixenwraith/snapscroll/easing"
	"github.com/lixenwraith/snapscroll/focus"
	"github.com/lixenwraith/snapscroll/intent"
	"github.com/lixenwraith/snapscroll/section"
	"github.com/lixenwraith/snapscroll/snap"
	"github.com/lixenwraith/snapscroll/track"
	"github.com/lixenwraith/snapscroll/viewport"
)

// Controller wires tracking, snapping, intent, focus and chrome over one
// document. Controllers are single-threaded: feed events and call Tick from
// the same loop. Multiple controllers share no state
type Controller struct {
	cfg Config
	doc *document.Document
	vp  *viewport.Viewport
	clk clock.Clock

	sections   []*section.Section
	tracker    *track.Tracker
	classifier *intent.Classifier
	animator   *snap.Animator
	focus      *focus.Coordinator
	ease       easing.Func

	bar    *chrome.ProgressBar
	topBtn *chrome.TopButton

	reduced      bool
	lastTouchPos float64
	closed       bool
}

// New builds a controller over doc with a viewport of the given visible
// extent. The content extent is taken from the document root; the scroll
// axis from cfg.Horizontal. All configuration errors degrade to defaults
// with a diagnostic notice; only nil inputs are fatal
func New(doc *document.Document, viewExtent float64, cfg Config) (*Controller, error) {
	if doc == nil || doc.Root == nil {
		return nil, fmt.Errorf("snapscroll: nil document")
	}
	cfg.normalize()

	axis := document.AxisVertical
	if cfg.Horizontal {
		axis = document.AxisHorizontal
	}

	c := &Controller{
		cfg: cfg,
		doc: doc,
		vp:  viewport.New(axis, viewExtent, doc.Root.Extent),
		clk: cfg.Clock,
	}

	c.reduced = PreferReducedMotion()
	if cfg.ReducedMotion != nil {
		c.reduced = *cfg.ReducedMotion
	}

	c.ease, _ = easing.Lookup(cfg.Snap.Easing)
	if c.ease == nil {
		if cfg.Snap.Easing != "" {
			cfg.Logger.Printf("snapscroll: unknown easing %q, using %s", cfg.Snap.Easing, easing.DefaultName)
		}
		c.ease = easing.Default()
	}

	sections, err := section.Collect(doc, cfg.SectionSelector)
	if err != nil {
		cfg.Logger.Printf("snapscroll: section selector %q: %v (tracking nothing)", cfg.SectionSelector, err)
		sections = nil
	}
	c.sections = sections

	c.tracker = track.New(sections, c.vp, cfg.Threshold, track.Callbacks{
		OnEnter:        cfg.On.OnSectionEnter,
		OnLeave:        cfg.On.OnSectionLeave,
		OnFirstEnter:   cfg.On.OnFirstEnter,
		OnReEnter:      cfg.On.OnReEnter,
		OnFullyVisible: cfg.On.OnFullyVisible,
	})

	if cfg.Intent.Enabled {
		c.classifier = intent.NewClassifier(axis)
	}

	c.animator = snap.New(c.vp, c.clk, snap.Callbacks{
		OnSnapStart: cfg.On.OnSnapStart,
		OnSnapEnd:   cfg.On.OnSnapEnd,
	})

	c.focus = focus.New(doc, cfg.Focus)

	if cfg.ProgressBar.Enabled {
		bar, warn := chrome.NewProgressBar(doc, cfg.ProgressBar.Selector)
		if warn != nil {
			cfg.Logger.Printf("snapscroll: %v (creating bar)", warn)
		}
		c.bar = bar
	}

	if cfg.ScrollTop.Target != "" || cfg.ScrollTop.UI {
		pos, ok := chrome.ParsePosition(cfg.ScrollTop.Position)
		if !ok && cfg.ScrollTop.Position != "" {
			cfg.Logger.Printf("snapscroll: unknown scroll-to-top position %q, using %s", cfg.ScrollTop.Position, pos)
		}
		btn, warn := chrome.NewTopButton(doc, chrome.TopButtonConfig{
			Target:    cfg.ScrollTop.Target,
			Create:    cfg.ScrollTop.UI,
			ShowAfter: cfg.ScrollTop.ShowAfter,
			Position:  pos,
		})
		if warn != nil {
			cfg.Logger.Printf("snapscroll: %v (creating button)", warn)
		}
		c.topBtn = btn
	}

	return c, nil
}

// Viewport exposes scroll state for host rendering
func (c *Controller) Viewport() *viewport.Viewport { return c.vp }

// Sections returns the tracked sections in index order
func (c *Controller) Sections() []*section.Section { return c.sections }

// CurrentSection returns the most recently activated section, nil if none
func (c *Controller) CurrentSection() *section.Section { return c.tracker.Current() }

// Intent exposes the classifier, nil when intent detection is disabled
func (c *Controller) Intent() *intent.Classifier { return c.classifier }

// SetViewExtent updates the visible extent on host resize
func (c *Controller) SetViewExtent(extent float64) {
	if c.closed {
		return
	}
	c.vp.SetExtent(extent)
}

// Tick advances the controller to now: animation frames first, then one
// coalesced visibility pass if anything scrolled, then due focus intents
func (c *Controller) Tick(now time.Time) {
	if c.closed {
		return
	}
	c.animator.Tick(now)
	if c.vp.ConsumeDirty() {
		c.tracker.Recompute()
		p := c.vp.Progress()
		if c.bar != nil {
			c.bar.Update(p)
		}
		if c.topBtn != nil {
			c.topBtn.Update(p)
		}
		if c.cfg.On.OnScrollProgress != nil {
			c.cfg.On.OnScrollProgress(p)
		}
	}
	c.focus.Tick(now)
}

// --- Input ingestion ---

// HandleWheel consumes a wheel event: the classifier samples it and the
// viewport scrolls by the normalized delta. Wheel input cancels any
// pending focus intent
func (c *Controller) HandleWheel(e intent.WheelEvent) {
	if c.closed {
		return
	}
	c.focus.Disarm()
	if c.classifier != nil {
		c.classifier.ObserveWheel(e)
	}
	c.vp.ScrollBy(e.AxisDelta(c.vp.Axis()))
}

// HandleTouchStart begins a drag gesture at pos along the scroll axis
func (c *Controller) HandleTouchStart(pos float64, t time.Time) {
	if c.closed || !c.cfg.TouchEnabled {
		return
	}
	c.focus.Disarm()
	if c.classifier != nil {
		c.classifier.TouchStart(pos, t)
	}
	c.lastTouchPos = pos
}

// HandleTouchMove drags the content opposite to the gesture
func (c *Controller) HandleTouchMove(pos float64, t time.Time) {
	if c.closed || !c.cfg.TouchEnabled {
		return
	}
	if c.classifier != nil {
		c.classifier.TouchMove(pos, t)
	}
	c.vp.ScrollBy(c.lastTouchPos - pos)
	c.lastTouchPos = pos
}

// HandleTouchEnd finishes the gesture; the classifier keeps its last values
func (c *Controller) HandleTouchEnd() {
	if c.closed || !c.cfg.TouchEnabled {
		return
	}
	if c.classifier != nil {
		c.classifier.TouchEnd()
	}
}

// HandleKey maps navigation keys to section movement and reports whether
// the event was consumed. Keyboard-initiated navigation arms the deferred
// focus intent
func (c *Controller) HandleKey(ev *tcell.EventKey) bool {
	if c.closed || !c.cfg.KeyboardNavigation {
		return false
	}

	nextKey, prevKey := tcell.KeyDown, tcell.KeyUp
	if c.cfg.Horizontal {
		nextKey, prevKey = tcell.KeyRight, tcell.KeyLeft
	}

	switch ev.Key() {
	case nextKey, tcell.KeyPgDn:
		c.scrollToNext(true)
	case prevKey, tcell.KeyPgUp:
		c.scrollToPrevious(true)
	case tcell.KeyHome:
		c.scrollToTop(c.cfg.ScrollTop.Behavior, c.cfg.ScrollTop.Focus)
	case tcell.KeyEnd:
		if n := len(c.sections); n > 0 {
			c.navigate(c.sections[n-1], true)
		}
	default:
		return false
	}
	return true
}

// --- Navigation ---

// ScrollToSection snaps to the section at index; out-of-range is a no-op
func (c *Controller) ScrollToSection(index int) {
	if index < 0 || index >= len(c.sections) {
		return
	}
	c.navigate(c.sections[index], false)
}

// ScrollToNext advances one section: with no current section it jumps to
// section 0; at the last section it is a no-op
func (c *Controller) ScrollToNext() { c.scrollToNext(false) }

// ScrollToPrevious moves back one section: with no current section or at
// section 0 it is a no-op
func (c *Controller) ScrollToPrevious() { c.scrollToPrevious(false) }

func (c *Controller) scrollToNext(keyboard bool) {
	cur := c.tracker.Current()
	if cur == nil {
		if len(c.sections) > 0 {
			c.navigate(c.sections[0], keyboard)
		}
		return
	}
	if cur.Index+1 < len(c.sections) {
		c.navigate(c.sections[cur.Index+1], keyboard)
	}
}

func (c *Controller) scrollToPrevious(keyboard bool) {
	cur := c.tracker.Current()
	if cur == nil {
		return
	}
	if cur.Index-1 >= 0 {
		c.navigate(c.sections[cur.Index-1], keyboard)
	}
}

// ScrollToAnchor scrolls to the first element matching sel. Matching a
// tracked section root is a full section navigation; any other element is
// an anchor jump without snap callbacks. Invalid or unmatched selectors
// are no-ops
func (c *Controller) ScrollToAnchor(sel string) {
	if c.closed {
		return
	}
	el, err := c.doc.Query(sel)
	if err != nil {
		c.cfg.Logger.Printf("snapscroll: anchor selector %q: %v", sel, err)
		return
	}
	if el == nil {
		return
	}
	for _, s := range c.sections {
		if s.Element == el {
			c.navigate(s, false)
			return
		}
	}
	c.focus.Disarm()
	c.animator.Start(el.Offset-c.cfg.ScrollOffset, nil, c.resolveDuration(false), c.ease)
}

// ScrollToTop scrolls to offset 0 using the configured behavior and focus
func (c *Controller) ScrollToTop() {
	c.scrollToTop(c.cfg.ScrollTop.Behavior, c.cfg.ScrollTop.Focus)
}

// ScrollToTopWith overrides the configured behavior ("smooth" animates,
// anything else jumps) and whether focus moves to the document root after
func (c *Controller) ScrollToTopWith(behavior string, focusAfter bool) {
	c.scrollToTop(behavior, focusAfter)
}

func (c *Controller) scrollToTop(behavior string, focusAfter bool) {
	if c.closed {
		return
	}
	c.focus.Disarm()

	d := time.Duration(0)
	if behavior == "smooth" {
		d = c.resolveDuration(false)
	}
	c.animator.Start(0, nil, d, c.ease)

	if focusAfter {
		root := c.doc.Root
		if _, ok := root.Attr("tabindex"); !ok && !root.NativelyFocusable() {
			root.SetAttr("tabindex", "-1")
		}
		c.doc.Focus(root, c.cfg.Focus.PreventScroll && c.doc.SupportsPreventScroll())
	}
}

func (c *Controller) navigate(sec *section.Section, keyboard bool) {
	if c.closed || sec == nil {
		return
	}
	d := c.resolveDuration(true)
	c.animator.Start(sec.Element.Offset-c.cfg.ScrollOffset, sec, d, c.ease)

	if keyboard {
		// Focus lands after the resolved animation duration elapses
		c.focus.Arm(sec, c.clk.Now().Add(d))
	} else {
		c.focus.Disarm()
	}
}

// resolveDuration picks the animation duration: zero for reduced motion or
// disabled snap, intent-adapted for section navigation when configured
func (c *Controller) resolveDuration(sectionNav bool) time.Duration {
	if c.reduced || !c.cfg.Snap.Enabled {
		return 0
	}
	base := c.cfg.Snap.Duration
	if base <= 0 {
		return 0
	}
	if sectionNav && c.cfg.Intent.Enabled && c.cfg.Intent.AdaptiveSnap {
		return snap.AdaptDuration(base, c.classifier)
	}
	return base
}

// Close tears the controller down: stops animation, disconnects tracking,
// removes created chrome, cancels the pending focus intent and ignores all
// further events. Safe to call more than once
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.animator.Stop()
	c.tracker.Disconnect()
	if c.bar != nil {
		c.bar.Remove()
	}
	if c.topBtn != nil {
		c.topBtn.Remove()
	}
	c.focus.Disarm()
}
