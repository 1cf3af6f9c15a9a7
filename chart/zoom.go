package chart

const (
	MinZoom = 1
	MaxZoom = 5

	baseBarWidth   = 15
	barWidthStep   = 5
	baseBarSpacing = 5
	barSpacingStep = 2
)

// Zoom holds the zoom level. The zero value is level 1.
type Zoom struct {
	// stored as offset from MinZoom so the zero value is valid
	step int
}

func (z Zoom) Level() int { return z.step + MinZoom }

// BarWidth is the pixel width of one bar at the current level.
func (z Zoom) BarWidth() int { return baseBarWidth + barWidthStep*z.step }

// BarSpacing is the gap in pixels between neighbouring bars.
func (z Zoom) BarSpacing() int { return baseBarSpacing + barSpacingStep*z.step }

// Stride is the distance from one bar start to the next.
func (z Zoom) Stride() int { return z.BarWidth() + z.BarSpacing() }

// In raises the level by one and reports whether it changed.
func (z *Zoom) In() bool {
	if z.Level() >= MaxZoom {
		return false
	}
	z.step++
	return true
}

// Out lowers the level by one and reports whether it changed.
func (z *Zoom) Out() bool {
	if z.Level() <= MinZoom {
		return false
	}
	z.step--
	return true
}

func (z *Zoom) Reset() { z.step = 0 }
