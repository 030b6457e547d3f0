package chrome

import "github.com/gdamore/tcell/v2"

// Block characters for terminal bar rendering
const (
	barFull  = '█'
	barHalf  = '▌'
	barEmpty = '░'
)

// DrawBar renders pct as a horizontal block bar of width w at (x, y)
func DrawBar(s tcell.Screen, x, y, w int, pct float64, style tcell.Style) {
	if w <= 0 {
		return
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(float64(w) * pct)
	remainder := float64(w)*pct - float64(filled)

	for i := 0; i < w; i++ {
		var ch rune
		switch {
		case i < filled:
			ch = barFull
		case i == filled && remainder >= 0.5:
			ch = barHalf
		default:
			ch = barEmpty
		}
		s.SetContent(x+i, y, ch, nil, style)
	}
}

// DrawBarV renders pct as a vertical block bar of height h, filling top-down
func DrawBarV(s tcell.Screen, x, y, h int, pct float64, style tcell.Style) {
	if h <= 0 {
		return
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(float64(h) * pct)
	for i := 0; i < h; i++ {
		ch := barEmpty
		if i < filled {
			ch = barFull
		}
		s.SetContent(x, y+i, ch, nil, style)
	}
}
