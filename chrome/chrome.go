// Package chrome owns the controller's visual collaborators: the scroll
// progress bar and the scroll-to-top button. Both are specified at the
// element boundary; hosts decide how the elements are painted.
package chrome

import (
	"fmt"

	"github.com/lixenwraith/snapscroll/document"
)

// Element classes applied by the chrome surface
const (
	ClassProgressTrack = "scroll-progress"
	ClassProgressFill  = "scroll-progress-fill"
	ClassTopButton     = "scroll-to-top"
	ClassVisible       = "is-visible"
)

// Position places the scroll-to-top button
type Position uint8

const (
	PositionBottomRight Position = iota
	PositionBottomLeft
	PositionTopRight
	PositionTopLeft
)

// String returns the position class suffix
func (p Position) String() string {
	switch p {
	case PositionBottomLeft:
		return "bottom-left"
	case PositionTopRight:
		return "top-right"
	case PositionTopLeft:
		return "top-left"
	default:
		return "bottom-right"
	}
}

// Class returns the position marker class
func (p Position) Class() string { return "position-" + p.String() }

// ParsePosition maps a configured position name to a Position
// ok is false for unknown names; callers fall back to bottom-right
func ParsePosition(name string) (Position, bool) {
	switch name {
	case "bottom-right", "":
		return PositionBottomRight, name != ""
	case "bottom-left":
		return PositionBottomLeft, true
	case "top-right":
		return PositionTopRight, true
	case "top-left":
		return PositionTopLeft, true
	default:
		return PositionBottomRight, false
	}
}

// ProgressBar is the root+fill element pair reflecting scroll progress
type ProgressBar struct {
	doc         *document.Document
	track       *document.Element
	fill        *document.Element
	created     bool
	fillCreated bool
	progress    float64
}

// NewProgressBar attaches to the element matching selector, creating the
// track and fill under the document root when nothing matches. The returned
// warning is non-nil for an unparseable selector, which is treated as
// "not found" rather than raised
func NewProgressBar(doc *document.Document, selector string) (*ProgressBar, error) {
	var warn error
	var track *document.Element
	if selector != "" {
		el, err := doc.Query(selector)
		if err != nil {
			warn = fmt.Errorf("progress bar selector: %w", err)
		}
		track = el
	}

	b := &ProgressBar{doc: doc, track: track}
	if b.track == nil {
		b.track = document.NewElement("div")
		b.track.AddClass(ClassProgressTrack)
		doc.Root.AppendChild(b.track)
		b.created = true
	}

	for _, c := range b.track.Children {
		if c.HasClass(ClassProgressFill) {
			b.fill = c
			break
		}
	}
	if b.fill == nil {
		b.fill = document.NewElement("div")
		b.fill.AddClass(ClassProgressFill)
		b.track.AppendChild(b.fill)
		b.fillCreated = true
	}
	return b, warn
}

// Update sets the fill to progress in [0,1]
func (b *ProgressBar) Update(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	b.progress = progress
	b.fill.Extent = progress
}

// Progress returns the last applied progress
func (b *ProgressBar) Progress() float64 { return b.progress }

// Track returns the track element
func (b *ProgressBar) Track() *document.Element { return b.track }

// Remove detaches only the elements the bar created; externally supplied
// tracks and fills are left in place
func (b *ProgressBar) Remove() {
	if b.created {
		b.doc.Root.RemoveChild(b.track)
		return
	}
	if b.fillCreated {
		b.track.RemoveChild(b.fill)
	}
}

// TopButtonConfig configures the scroll-to-top button surface
type TopButtonConfig struct {
	// Target selects an existing element to drive instead of creating one
	Target string
	// Create requests a button element when Target is unset or matches
	// nothing; without it a missing target means no button
	Create bool
	// ShowAfter is the scroll progress above which the button is visible
	ShowAfter float64
	// Position places a created button
	Position Position
}

// TopButton shows once the viewport scrolls past a progress threshold
type TopButton struct {
	doc     *document.Document
	el      *document.Element
	created bool
	cfg     TopButtonConfig
	visible bool
}

// NewTopButton attaches to cfg.Target, or creates a button element under the
// document root when cfg.Create is set. A missing target without Create
// yields no button. The returned warning is non-nil for an unparseable
// target selector, treated as "not found"
func NewTopButton(doc *document.Document, cfg TopButtonConfig) (*TopButton, error) {
	var warn error
	var el *document.Element
	if cfg.Target != "" {
		found, err := doc.Query(cfg.Target)
		if err != nil {
			warn = fmt.Errorf("scroll-to-top target: %w", err)
		}
		el = found
	}

	if el == nil && !cfg.Create {
		return nil, warn
	}

	t := &TopButton{doc: doc, el: el, cfg: cfg}
	if t.el == nil {
		t.el = document.NewElement("button")
		t.el.AddClass(ClassTopButton)
		t.el.AddClass(cfg.Position.Class())
		doc.Root.AppendChild(t.el)
		t.created = true
	}
	return t, warn
}

// Update toggles visibility against the configured progress threshold
func (t *TopButton) Update(progress float64) {
	show := progress > t.cfg.ShowAfter
	if show == t.visible {
		return
	}
	t.visible = show
	if show {
		t.el.AddClass(ClassVisible)
	} else {
		t.el.RemoveClass(ClassVisible)
	}
}

// Visible reports whether the button is currently shown
func (t *TopButton) Visible() bool { return t.visible }

// Element returns the button element
func (t *TopButton) Element() *document.Element { return t.el }

// Remove detaches the button if this surface created it
func (t *TopButton) Remove() {
	if t.created {
		t.doc.Root.RemoveChild(t.el)
	}
}
