package chart

import "fmt"

// Hit is the bar found under a pointer.
type Hit struct {
	Index int
	Value float64
}

// Tooltip is the hover text for the bar, e.g. "Item 3: 120.50".
func (h Hit) Tooltip() string {
	return fmt.Sprintf("%s: %.2f", ItemName(h.Index), h.Value)
}

// HitTest returns the bar under panel coordinate (x, y) using the canvas size
// of the last Render. Slots are measured from the left margin: slot i covers
// [LeftMargin + i*stride, LeftMargin + i*stride + BarWidth] and the remaining
// BarSpacing pixels of the stride hit nothing. Missing values and pointers
// outside the plot band hit nothing either.
func (m *Model) HitTest(x, y int) (Hit, bool) {
	ch := plotHeight(m.height)
	if x < LeftMargin || y < TopMargin || y > TopMargin+ch {
		return Hit{}, false
	}
	stride := m.zoom.Stride()
	i := (x - LeftMargin) / stride
	if i >= len(m.data) {
		return Hit{}, false
	}
	start := LeftMargin + i*stride
	if x < start || x > start+m.zoom.BarWidth() {
		return Hit{}, false
	}
	v := m.data[i]
	if !v.Valid {
		return Hit{}, false
	}
	return Hit{Index: i, Value: v.Float64}, true
}

// BarStart is the x coordinate of the left edge of painted bar i.
func (m *Model) BarStart(i int) int {
	return LeftMargin + m.zoom.BarSpacing() + i*m.zoom.Stride()
}
