// Package section holds the per-section state a scroll controller tracks.
package section

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/snapscroll/document"
)

// LifecycleState is the section's geometric position relative to the
// viewport, independent of the activation threshold
type LifecycleState uint8

const (
	StateUpcoming LifecycleState = iota
	StateActive
	StatePassed
)

// String returns human-readable state name
func (s LifecycleState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePassed:
		return "passed"
	default:
		return "upcoming"
	}
}

// Class returns the visual state marker class for s
func (s LifecycleState) Class() string {
	return "state-" + s.String()
}

// Section is one tracked content region
// Element is externally owned; the tracker only observes it
type Section struct {
	Element    *document.Element
	Index      int
	Identifier string

	VisibilityRatio float64
	State           LifecycleState
	IsActive        bool

	// HasEnteredBefore is set on first activation and never reset,
	// discriminating first-enter from re-enter
	HasEnteredBefore bool

	// WasFullyVisible tracks the ratio >= 0.99 edge for the dedicated
	// fully-visible event
	WasFullyVisible bool
}

// New creates a section for el at ordinal index
// Identifier defaults to the element ID, or a generated value if absent
func New(el *document.Element, index int) *Section {
	id := el.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Section{
		Element:    el,
		Index:      index,
		Identifier: id,
	}
}

// Collect builds the section set from elements matching sel under the
// document root, in document order. Indexes are contiguous 0..N-1 and the
// set is fixed for the controller's lifetime; there is no dynamic re-scan
func Collect(doc *document.Document, sel string) ([]*Section, error) {
	elems, err := doc.QueryAll(sel)
	if err != nil {
		return nil, err
	}
	sections := make([]*Section, len(elems))
	for i, el := range elems {
		sections[i] = New(el, i)
	}
	return sections, nil
}
