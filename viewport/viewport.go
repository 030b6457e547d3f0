// Package viewport tracks the scroll position of a document viewport along
// one axis.
//
// Offsets are float64 so easing animations can move in sub-cell steps; hosts
// round when rendering. A dirty flag coalesces recomputation: any number of
// scroll mutations within one frame cost a single visibility pass.
package viewport

import "github.com/lixenwraith/snapscroll/document"

// Viewport is scroll state for one document
type Viewport struct {
	axis    document.Axis
	offset  float64
	extent  float64 // visible size along the axis
	content float64 // total content size along the axis
	dirty   bool
}

// New creates a viewport with the given visible and content extents
// The initial offset is 0 and the viewport starts dirty so the first
// frame performs a full visibility pass
func New(axis document.Axis, extent, content float64) *Viewport {
	return &Viewport{
		axis:    axis,
		extent:  extent,
		content: content,
		dirty:   true,
	}
}

// Axis returns the scroll orientation
func (v *Viewport) Axis() document.Axis { return v.axis }

// Offset returns the current scroll offset
func (v *Viewport) Offset() float64 { return v.offset }

// Extent returns the visible size along the axis
func (v *Viewport) Extent() float64 { return v.extent }

// ContentExtent returns the total content size along the axis
func (v *Viewport) ContentExtent() float64 { return v.content }

// MaxOffset returns the maximum valid scroll offset
func (v *Viewport) MaxOffset() float64 {
	max := v.content - v.extent
	if max < 0 {
		return 0
	}
	return max
}

// CanScroll reports whether content exceeds the viewport
func (v *Viewport) CanScroll() bool { return v.content > v.extent }

// ScrollTo sets the absolute offset, clamped to the valid range
func (v *Viewport) ScrollTo(pos float64) {
	v.offset = v.clamp(pos)
	v.dirty = true
}

// ScrollBy adjusts the offset by delta, clamped to the valid range
func (v *Viewport) ScrollBy(delta float64) {
	v.ScrollTo(v.offset + delta)
}

// SetExtent updates the visible size (host resize) and reclamps
func (v *Viewport) SetExtent(extent float64) {
	v.extent = extent
	v.offset = v.clamp(v.offset)
	v.dirty = true
}

// SetContentExtent updates the content size and reclamps
func (v *Viewport) SetContentExtent(content float64) {
	v.content = content
	v.offset = v.clamp(v.offset)
	v.dirty = true
}

// Progress returns scroll position as a fraction of the scrollable range,
// 0 when the content fits the viewport
func (v *Viewport) Progress() float64 {
	max := v.MaxOffset()
	if max <= 0 {
		return 0
	}
	p := v.offset / max
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// MarkDirty forces a visibility pass on the next frame
func (v *Viewport) MarkDirty() { v.dirty = true }

// ConsumeDirty returns whether a visibility pass is pending and clears the
// flag, so at most one pass runs per scroll burst
func (v *Viewport) ConsumeDirty() bool {
	d := v.dirty
	v.dirty = false
	return d
}

func (v *Viewport) clamp(pos float64) float64 {
	if pos < 0 {
		return 0
	}
	if max := v.MaxOffset(); pos > max {
		return max
	}
	return pos
}
