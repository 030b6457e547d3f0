// Package easing provides normalized animation curves for scroll motion.
//
// Every curve maps t in [0,1] to progress in [0,1] with f(0)=0 and f(1)=1.
// Curves are pure functions; lookup by name is table-driven so callers can
// fall back to a default when a configured name is unknown.
package easing

// Func maps normalized time to normalized progress
type Func func(t float64) float64

// DefaultName is the curve used when a configured name is unknown
const DefaultName = "ease-in-out-quad"

// Linear returns t unchanged
func Linear(t float64) float64 { return t }

// InQuad accelerates from zero velocity
func InQuad(t float64) float64 { return t * t }

// OutQuad decelerates to zero velocity
func OutQuad(t float64) float64 { return t * (2 - t) }

// InOutQuad accelerates until halfway, then decelerates
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// InCubic accelerates from zero velocity, steeper than InQuad
func InCubic(t float64) float64 { return t * t * t }

// OutCubic decelerates to zero velocity, steeper than OutQuad
func OutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// InOutCubic accelerates until halfway, then decelerates
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

// Smoothstep is the classic Hermite interpolation 3t²-2t³
func Smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

var curves = map[string]Func{
	"linear":            Linear,
	"ease-in-quad":      InQuad,
	"ease-out-quad":     OutQuad,
	"ease-in-out-quad":  InOutQuad,
	"ease-in-cubic":     InCubic,
	"ease-out-cubic":    OutCubic,
	"ease-in-out-cubic": InOutCubic,
	"smoothstep":        Smoothstep,
}

// Lookup returns the curve registered under name
// ok is false for unknown names; callers should fall back to Default
func Lookup(name string) (f Func, ok bool) {
	f, ok = curves[name]
	return f, ok
}

// Default returns the fallback curve for unknown names
func Default() Func { return curves[DefaultName] }

// Names returns all registered curve names, unordered
func Names() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	return names
}
