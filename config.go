package snapscroll

import (
	"log"
	"os"
	"time"

	"github.com/lixenwraith/snapscroll/clock"
	"github.com/lixenwraith/snapscroll/easing"
	"github.com/lixenwraith/snapscroll/focus"
	"github.com/lixenwraith/snapscroll/section"
)

// SnapConfig controls snap animation between sections
type SnapConfig struct {
	Enabled  bool
	Duration time.Duration
	Easing   string
}

// ProgressConfig controls the scroll progress bar surface
type ProgressConfig struct {
	Enabled  bool
	Selector string
}

// ScrollTopConfig controls the scroll-to-top surface
// Either Target selects an existing element, or UI requests a created button
type ScrollTopConfig struct {
	Target    string
	UI        bool
	ShowAfter float64
	Position  string
	Behavior  string // "smooth" animates, anything else jumps
	Focus     bool
}

// IntentConfig controls input-device estimation
type IntentConfig struct {
	Enabled      bool
	AdaptiveSnap bool
}

// Callbacks is the optional lifecycle handler table
// Unset handlers are skipped
type Callbacks struct {
	// OnSectionEnter is the combined enter handler, fired on every
	// activation after exactly one of OnFirstEnter / OnReEnter
	OnSectionEnter func(*section.Section)
	OnSectionLeave func(*section.Section)
	// OnScrollProgress receives overall scroll progress in [0,1]
	OnScrollProgress func(float64)
	OnFirstEnter     func(*section.Section)
	OnReEnter        func(*section.Section)
	OnFullyVisible   func(*section.Section)
	OnSnapStart      func(*section.Section)
	OnSnapEnd        func(*section.Section)
}

// Config is the full option surface of a controller
// Start from DefaultConfig and override; a zero Config also works, with
// every feature switched off and safe fallbacks for invalid values
type Config struct {
	// SectionSelector matches the tracked section elements
	SectionSelector string

	// Threshold is the visibility ratio gating section activation
	Threshold float64

	// ScrollOffset is subtracted from every navigation target, leaving
	// room for fixed chrome above (or left of) the content
	ScrollOffset float64

	// Horizontal swaps the scroll axis
	Horizontal bool

	Snap        SnapConfig
	ProgressBar ProgressConfig
	ScrollTop   ScrollTopConfig
	Intent      IntentConfig
	Focus       focus.Config

	KeyboardNavigation bool
	TouchEnabled       bool

	// ReducedMotion overrides the platform preference when non-nil
	ReducedMotion *bool

	On Callbacks

	// Logger receives non-fatal diagnostic notices; defaults to the
	// standard logger
	Logger *log.Logger

	// Clock is the time source for animations and deferred focus;
	// defaults to the system clock. Tests inject a manual clock
	Clock clock.Clock
}

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{
		SectionSelector:    "section",
		Threshold:          0.5,
		Snap:               SnapConfig{Enabled: true, Duration: 600 * time.Millisecond, Easing: easing.DefaultName},
		ProgressBar:        ProgressConfig{Enabled: true},
		ScrollTop:          ScrollTopConfig{ShowAfter: 0.2, Position: "bottom-right"},
		Intent:             IntentConfig{Enabled: true, AdaptiveSnap: true},
		Focus:              focus.DefaultConfig(),
		KeyboardNavigation: true,
		TouchEnabled:       true,
	}
}

// PreferReducedMotion reports the platform's reduced-motion preference
// Overridable for hosts with their own preference source
var PreferReducedMotion = func() bool {
	return os.Getenv("SNAPSCROLL_REDUCE_MOTION") != ""
}

func (c *Config) normalize() {
	if c.SectionSelector == "" {
		c.SectionSelector = "section"
	}
	if c.Threshold < 0 {
		c.Threshold = 0
	}
	if c.Threshold > 1 {
		c.Threshold = 1
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	if c.Clock == nil {
		c.Clock = clock.System{}
	}
}
