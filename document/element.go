// Package document models the scrollable document a controller operates on.
//
// Elements form a tree with geometry expressed along a single scroll axis in
// abstract units. The controller never owns elements; it observes geometry
// and toggles state classes, mirroring how the host renders them.
package document

// Axis selects the scroll orientation
type Axis uint8

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns human-readable axis name
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Element is one node of the document tree
// Offset and Extent are document-relative along the scroll axis
type Element struct {
	Tag      string
	ID       string
	Offset   float64
	Extent   float64
	Children []*Element

	classes []string
	attrs   map[string]string
}

// NewElement creates an element with the given tag
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// End returns the far edge of the element along the scroll axis
func (e *Element) End() float64 { return e.Offset + e.Extent }

// AppendChild adds child as the last child of e
func (e *Element) AppendChild(child *Element) {
	e.Children = append(e.Children, child)
}

// RemoveChild removes child from e's children, no-op if absent
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			return
		}
	}
}

// --- Classes ---

// AddClass adds name to the element's class list, no-op if present
func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

// RemoveClass removes name from the element's class list, no-op if absent
func (e *Element) RemoveClass(name string) {
	for i, c := range e.classes {
		if c == name {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether name is in the element's class list
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns a copy of the element's class list in insertion order
func (e *Element) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// --- Attributes ---

// SetAttr sets a string attribute on the element
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Attr returns the attribute value and whether it is set
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// RemoveAttr deletes an attribute, no-op if absent
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// Natively focusable tag kinds
var focusableTags = map[string]bool{
	"a":        true,
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
}

// NativelyFocusable reports whether the element's tag kind accepts focus
// without an explicit tabindex
func (e *Element) NativelyFocusable() bool {
	return focusableTags[e.Tag]
}

// Walk visits e and its descendants in document (preorder) order
// Traversal stops when visit returns false
func (e *Element) Walk(visit func(*Element) bool) bool {
	if !visit(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(visit) {
			return false
		}
	}
	return true
}
