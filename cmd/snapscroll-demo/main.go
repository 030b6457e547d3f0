// Command snapscroll-demo renders a sectioned text document in the terminal
// and drives it with a snapscroll controller: wheel and drag scrolling,
// arrow/page-key section snapping, a progress bar and a scroll-to-top
// button, with an optional audio cue on section changes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snapscroll"
	"github.com/lixenwraith/snapscroll/chrome"
	"github.com/lixenwraith/snapscroll/document"
	"github.com/lixenwraith/snapscroll/intent"
	"github.com/lixenwraith/snapscroll/section"
)

// cellUnit is the scroll-unit height of one terminal row, so animations can
// move in sub-row steps
const cellUnit = 16.0

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	configFlag = flag.String("config", "", "Path to YAML demo config")
	debugFlag  = flag.Bool("debug", false, "Write diagnostics to logs/")
	noAudio    = flag.Bool("no-audio", false, "Disable the section-change cue")
)

// line is one renderable content row bound to its owning section element
type line struct {
	text    string
	heading bool
	owner   *document.Element
}

type viewer struct {
	screen tcell.Screen
	ctl    *snapscroll.Controller
	doc    *document.Document
	lines  []line

	width, height int
	dragging      bool
	audioReady    bool
}

// buildDocument lays the configured sections out as rows and returns the
// document plus the flattened render lines
func buildDocument(cfg demoConfig) (*document.Document, []line) {
	root := document.NewElement("root")
	var lines []line

	for i, sc := range cfg.Sections {
		el := document.NewElement("section")
		el.ID = fmt.Sprintf("section-%d", i+1)
		el.Offset = float64(len(lines)) * cellUnit

		heading := document.NewElement("h2")
		heading.AddClass("title")
		el.AppendChild(heading)

		lines = append(lines, line{text: sc.Title, heading: true, owner: el})
		lines = append(lines, line{owner: el})
		for n := 0; n < sc.Lines; n++ {
			lines = append(lines, line{
				text:  fmt.Sprintf("%s, paragraph %d of %d.", sc.Title, n+1, sc.Lines),
				owner: el,
			})
		}
		lines = append(lines, line{owner: el})

		el.Extent = float64(len(lines))*cellUnit - el.Offset
		root.AppendChild(el)
	}
	root.Extent = float64(len(lines)) * cellUnit

	return document.New(root, document.AxisVertical), lines
}

func newViewer(cfg demoConfig) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	v := &viewer{screen: screen}
	v.width, v.height = screen.Size()
	v.doc, v.lines = buildDocument(cfg)

	if cfg.Audio && !*noAudio {
		if err := v.initAudio(); err != nil {
			// Non-fatal, the demo runs silent
			log.Printf("audio init failed: %v", err)
		}
	}

	ctlCfg := snapscroll.DefaultConfig()
	ctlCfg.Threshold = cfg.Threshold
	ctlCfg.Snap.Enabled = cfg.Snap.Enabled
	ctlCfg.Snap.Duration = cfg.snapDuration()
	ctlCfg.Snap.Easing = cfg.Snap.Easing
	ctlCfg.ScrollTop.UI = true
	ctlCfg.ScrollTop.Behavior = "smooth"
	ctlCfg.Focus.Enabled = true
	ctlCfg.Focus.Target = ".title"
	ctlCfg.On.OnSectionEnter = func(s *section.Section) {
		log.Printf("enter %s (index %d)", s.Identifier, s.Index)
		v.playTick()
	}

	ctl, err := snapscroll.New(v.doc, v.contentRows()*cellUnit, ctlCfg)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	v.ctl = ctl
	return v, nil
}

// contentRows is the viewport height minus the progress and status rows
func (v *viewer) contentRows() float64 {
	rows := v.height - 2
	if rows < 1 {
		rows = 1
	}
	return float64(rows)
}

// --- Audio cue ---

func (v *viewer) initAudio() error {
	sr := beep.SampleRate(44100)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	v.audioReady = true
	return nil
}

func (v *viewer) playTick() {
	if !v.audioReady {
		return
	}
	sr := beep.SampleRate(44100)
	sine, err := generators.SineTone(sr, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sr.N(40*time.Millisecond), sine))
}

// --- Event handling ---

func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		v.ctl.HandleKey(ev)

	case *tcell.EventMouse:
		_, y := ev.Position()
		pos := float64(y) * cellUnit
		now := time.Now()
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			v.ctl.HandleWheel(intent.WheelEvent{DeltaY: -3, Mode: intent.DeltaLine, Time: now})
		case ev.Buttons()&tcell.WheelDown != 0:
			v.ctl.HandleWheel(intent.WheelEvent{DeltaY: 3, Mode: intent.DeltaLine, Time: now})
		case ev.Buttons()&tcell.Button1 != 0:
			if !v.dragging {
				v.dragging = true
				v.ctl.HandleTouchStart(pos, now)
			} else {
				v.ctl.HandleTouchMove(pos, now)
			}
		default:
			if v.dragging {
				v.dragging = false
				v.ctl.HandleTouchEnd()
			}
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.ctl.SetViewExtent(v.contentRows() * cellUnit)
		v.screen.Sync()
	}
	return true
}

// --- Rendering ---

func (v *viewer) lineStyle(l line) tcell.Style {
	st := tcell.StyleDefault
	if l.owner == nil {
		return st
	}
	switch {
	case l.owner.HasClass("section-active"):
		st = st.Foreground(tcell.ColorWhite)
	case l.owner.HasClass("state-passed"):
		st = st.Foreground(tcell.ColorGray)
	default:
		st = st.Foreground(tcell.ColorTeal).Dim(true)
	}
	if l.heading {
		st = st.Bold(true)
	}
	return st
}

func (v *viewer) draw() {
	v.screen.Clear()

	vp := v.ctl.Viewport()
	chrome.DrawBar(v.screen, 0, 0, v.width, vp.Progress(),
		tcell.StyleDefault.Foreground(tcell.ColorYellow))

	baseRow := int(vp.Offset() / cellUnit)
	contentH := int(v.contentRows())
	for r := 0; r < contentH; r++ {
		idx := baseRow + r
		if idx < 0 || idx >= len(v.lines) {
			continue
		}
		l := v.lines[idx]
		st := v.lineStyle(l)
		for i, ch := range l.text {
			if i >= v.width {
				break
			}
			v.screen.SetContent(i, r+1, ch, nil, st)
		}
	}

	v.drawStatus()
	v.screen.Show()
}

func (v *viewer) drawStatus() {
	status := "no section"
	if cur := v.ctl.CurrentSection(); cur != nil {
		status = fmt.Sprintf("%s (%d/%d)", cur.Identifier, cur.Index+1, len(v.ctl.Sections()))
	}
	if cls := v.ctl.Intent(); cls != nil && cls.Device() != intent.DeviceUnset {
		status += fmt.Sprintf("  %s %.2fu/ms", cls.Device(), cls.Velocity())
		if cls.IsFlick() {
			status += " flick"
		}
	}
	if f := v.doc.Focused(); f != nil {
		status += "  focus:" + f.Tag
	}

	y := v.height - 1
	st := tcell.StyleDefault.Dim(true)
	for i, ch := range status {
		if i >= v.width {
			break
		}
		v.screen.SetContent(i, y, ch, nil, st)
	}

	// The scroll-to-top button surface toggles an is-visible class
	if btn, _ := v.doc.Query(".scroll-to-top"); btn != nil && btn.HasClass("is-visible") {
		label := "[Home] top"
		x := v.width - len(label)
		for i, ch := range label {
			v.screen.SetContent(x+i, y, ch, nil, tcell.StyleDefault.Bold(true))
		}
	}
}

// --- Main loop ---

func (v *viewer) run() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- v.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !v.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			v.ctl.Tick(time.Now())
			v.draw()
		}
	}
}

func (v *viewer) cleanup() {
	v.ctl.Close()
	if v.audioReady {
		speaker.Close()
	}
	v.screen.Fini()
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadDemoConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapscroll-demo: %v\n", err)
		os.Exit(1)
	}

	v, err := newViewer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapscroll-demo: failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer v.cleanup()

	v.run()
}
