package chart

import (
	"fmt"
	"math"
)

// Render lays out the chart for a canvas of width x height pixels. The size
// is remembered so that HitTest agrees with what was painted.
func (m *Model) Render(width, height int) Drawing {
	m.width, m.height = width, height

	bw, bs := m.zoom.BarWidth(), m.zoom.BarSpacing()
	ch := plotHeight(height)
	bottom := TopMargin + ch
	right := width - bs

	d := Drawing{
		Width:     width,
		Height:    height,
		Plot:      Rect{Pos: Point{LeftMargin, TopMargin}, Width: max(0, right-LeftMargin), Height: ch},
		YAxis:     Line{From: Point{LeftMargin, TopMargin}, To: Point{LeftMargin, bottom}},
		XAxis:     Line{From: Point{LeftMargin, bottom}, To: Point{right, bottom}},
		MaxValue:  m.maxValue,
		ZoomLevel: m.zoom.Level(),
	}

	d.YLabels = make([]Label, 0, gridDivisions+1)
	d.Grid = make([]Line, 0, gridDivisions)
	for k := 0; k <= gridDivisions; k++ {
		v := m.maxValue / gridDivisions * float64(k)
		y := bottom - scale(v, m.maxValue, ch)
		d.YLabels = append(d.YLabels, Label{
			Pos:  Point{LeftMargin - yLabelOffsetX, y},
			Text: fmt.Sprintf("%.0f", v),
		})
		if k > 0 {
			d.Grid = append(d.Grid, Line{From: Point{LeftMargin, y}, To: Point{right, y}})
		}
	}

	x := LeftMargin + bs
	for i, v := range m.data {
		if v.Valid {
			h := max(0, scale(v.Float64, m.maxValue, ch))
			d.Bars = append(d.Bars, Bar{
				Index: i,
				Value: v.Float64,
				Rect:  Rect{Pos: Point{x, bottom - h}, Width: bw, Height: h},
			})
			if showItemLabel(i, bw) {
				d.XLabels = append(d.XLabels, Label{
					Pos:   Point{x + bw/2, bottom + xLabelBaseline},
					Text:  ItemName(i),
					Align: AlignCenter,
				})
			}
		}
		x += bw + bs
	}
	return d
}

// scale maps v in [0, maxValue] onto [0, span] pixels.
func scale(v, maxValue float64, span int) int {
	return int(math.Round(v / maxValue * float64(span)))
}

// showItemLabel labels every tenth bar, or every bar once bars are wider
// than 20px. The comparison is strict: level 2 (20px) keeps the sparse labels.
func showItemLabel(i, barWidth int) bool {
	return i%10 == 0 || barWidth > 20
}

// ItemName is the display name of the bar at index i.
func ItemName(i int) string {
	return fmt.Sprintf("Item %d", i+1)
}
