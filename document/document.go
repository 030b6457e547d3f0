package document

// Document is the scrollable content tree plus its focus state
type Document struct {
	Root *Element
	Axis Axis

	focused *Element

	// ScrollIntoView, when set, is invoked on plain (non-suppressed) focus
	// so the host can bring the focused element into view
	ScrollIntoView func(*Element)

	// supportsPreventScroll models the platform capability of focusing
	// without the implicit scroll-into-view; on by default
	supportsPreventScroll bool
}

// New creates a document around root scrolled along axis
func New(root *Element, axis Axis) *Document {
	return &Document{
		Root:                  root,
		Axis:                  axis,
		supportsPreventScroll: true,
	}
}

// Query returns the first descendant of the root matching sel, or nil
func (d *Document) Query(sel string) (*Element, error) {
	return Query(d.Root, sel)
}

// QueryAll returns all descendants of the root matching sel in document order
func (d *Document) QueryAll(sel string) ([]*Element, error) {
	return QueryAll(d.Root, sel)
}

// SetPreventScrollSupport toggles the focus scroll-suppression capability
// Used by tests and by hosts that cannot suppress the implicit scroll
func (d *Document) SetPreventScrollSupport(ok bool) {
	d.supportsPreventScroll = ok
}

// SupportsPreventScroll reports whether Focus can suppress scroll-into-view
func (d *Document) SupportsPreventScroll() bool {
	return d.supportsPreventScroll
}

// Focus moves document focus to el. When preventScroll is true and the
// capability is supported, the implicit scroll-into-view is skipped;
// otherwise focus falls back to the plain path which may scroll
func (d *Document) Focus(el *Element, preventScroll bool) {
	d.focused = el
	if preventScroll && d.supportsPreventScroll {
		return
	}
	if d.ScrollIntoView != nil {
		d.ScrollIntoView(el)
	}
}

// Focused returns the currently focused element, nil if none
func (d *Document) Focused() *Element {
	return d.focused
}

// Blur clears document focus
func (d *Document) Blur() {
	d.focused = nil
}
