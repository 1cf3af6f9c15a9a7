package ui

import "fyne.io/fyne/v2"

// viewportLayout stretches its objects over the whole area and reports the
// area's width to the chart before the scroll container measures it.
type viewportLayout struct {
	chart *BarChart
}

func (l *viewportLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	l.chart.SetAvailableWidth(size.Width)
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
}

func (l *viewportLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	ms := fyne.NewSize(0, 0)
	for _, o := range objects {
		if o.Visible() {
			ms = ms.Max(o.MinSize())
		}
	}
	return ms
}
