// Package snapscroll is a section-aware scroll controller for document
// viewports rendered in a terminal.
//
// It tracks which content section is visible, snaps between sections with
// eased, intent-adaptive animations, reflects scroll progress through a
// chrome surface, and manages focus after keyboard navigation.
//
// The controller is cooperative and single-threaded: the host render loop
// feeds it input events and calls Tick once per frame.
//
//	doc := document.New(root, document.AxisVertical)
//	ctl, err := snapscroll.New(doc, viewRows, snapscroll.DefaultConfig())
//	...
//	for each frame {
//	    ctl.Tick(time.Now())
//	    render(ctl.Viewport().Offset())
//	}
package snapscroll
