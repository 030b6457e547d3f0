// Package focus moves document focus after keyboard-initiated navigation.
//
// The keyboard handler arms a pending intent carrying the target section and
// a due time; every non-keyboard input disarms it. The intent is checked at
// fire time, so pointer input arriving while a snap animation runs cancels
// the focus move without any shared one-shot flag.
package focus

import (
	"time"

	"github.com/lixenwraith/snapscroll/document"
	"github.com/lixenwraith/snapscroll/section"
)

// TargetSection selects the section's own root element as the focus target
const TargetSection = "section"

// Config controls whether and where focus lands after navigation
type Config struct {
	Enabled bool

	// Target resolution order: TargetFunc when set, then TargetSection or
	// empty for the section root, anything else as a selector scoped to
	// the section subtree. Invalid selectors mean "no target found"
	Target     string
	TargetFunc func(*section.Section) *document.Element

	// PreventScroll suppresses the implicit scroll-into-view on focus
	// when the document supports it; on by default
	PreventScroll bool
}

// DefaultConfig returns focus defaults: disabled, section root target,
// scroll suppression on
func DefaultConfig() Config {
	return Config{Target: TargetSection, PreventScroll: true}
}

type pendingIntent struct {
	section *section.Section
	due     time.Time
}

// Coordinator applies deferred focus for one controller
type Coordinator struct {
	doc     *document.Document
	cfg     Config
	pending *pendingIntent
}

// New creates a coordinator over doc
func New(doc *document.Document, cfg Config) *Coordinator {
	return &Coordinator{doc: doc, cfg: cfg}
}

// Arm schedules a focus move to sec's target at due
// No-op when focus management is disabled
func (c *Coordinator) Arm(sec *section.Section, due time.Time) {
	if !c.cfg.Enabled || sec == nil {
		return
	}
	c.pending = &pendingIntent{section: sec, due: due}
}

// Disarm cancels any pending focus intent
// Called by every non-keyboard input handler and by teardown
func (c *Coordinator) Disarm() {
	c.pending = nil
}

// Armed reports whether a focus intent is pending
func (c *Coordinator) Armed() bool { return c.pending != nil }

// Tick applies the pending intent once its due time is reached
// The intent is cleared unconditionally, whether or not a target was found
func (c *Coordinator) Tick(now time.Time) {
	p := c.pending
	if p == nil || now.Before(p.due) {
		return
	}
	c.pending = nil
	c.apply(p.section)
}

func (c *Coordinator) apply(sec *section.Section) {
	target := c.resolve(sec)
	if target == nil {
		return
	}

	// Make the target programmatically focusable without entering the
	// normal tab order
	if _, ok := target.Attr("tabindex"); !ok && !target.NativelyFocusable() {
		target.SetAttr("tabindex", "-1")
	}

	if c.cfg.PreventScroll && c.doc.SupportsPreventScroll() {
		c.doc.Focus(target, true)
	} else {
		c.doc.Focus(target, false)
	}
}

func (c *Coordinator) resolve(sec *section.Section) *document.Element {
	if c.cfg.TargetFunc != nil {
		return c.cfg.TargetFunc(sec)
	}
	if c.cfg.Target == "" || c.cfg.Target == TargetSection {
		return sec.Element
	}
	el, err := document.Query(sec.Element, c.cfg.Target)
	if err != nil {
		// Invalid selector: treated as no target found
		return nil
	}
	return el
}
