package icon

const (
	// MinScale and MaxScale bound the scale search.
	MinScale = 1.0
	MaxScale = 200.0
	// ScaleTolerance is the width of the search interval at which the search stops.
	ScaleTolerance = 0.1
)

// Layout is where and how large text is drawn on a square canvas.
// OriginX and OriginY are the top-left corner of the text box.
type Layout struct {
	Scale   float64
	OriginX int
	OriginY int
}

// FitScale finds, by bisection, the largest scale at which text is narrower
// than side. The result is accurate to ScaleTolerance.
//
// The midpoint of the final interval is returned, so the text is narrower
// than side at s-ScaleTolerance/2 but may reach or slightly pass it at s
// itself. For Go Mono at 64 pixels "10" measures 64.000 and "0" 64.016.
//
// Width must be non-decreasing in scale for the search to be valid, which
// holds for unhinted advances. Empty text converges to MaxScale.
func FitScale(m Metrics, text string, side int) float64 {
	limit := float64(side)

	low, high := MinScale, MaxScale
	for high-low > ScaleTolerance {
		mid := (low + high) / 2
		if m.TextWidth(text, mid) < limit {
			low = mid
		} else {
			high = mid
		}
	}

	return (low + high) / 2
}

// Fit sizes text to the canvas and centres it.
//
// The ascent stands in for the text height, so glyphs with descenders sit
// slightly low.
func Fit(m Metrics, text string, side int) Layout {
	scale := FitScale(m, text, side)
	width := m.TextWidth(text, scale)
	height := m.Ascent(scale)

	return Layout{
		Scale: scale,
		// Conversion truncates toward zero.
		OriginX: int((float64(side) - width) / 2),
		OriginY: int((float64(side) - height) / 2),
	}
}
