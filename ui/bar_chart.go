package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"bar-ui/chart"
)

var (
	backgroundColor = color.White
	axisColor       = color.Black
	gridColor       = color.Gray{Y: 128}
	barColor        = color.NRGBA{R: 60, G: 140, B: 220, A: 255}
	barBorderColor  = color.Gray{Y: 64}
	tooltipBG       = color.NRGBA{R: 255, G: 255, B: 225, A: 240}
	tooltipBorder   = color.Gray{Y: 90}
)

const (
	tooltipOffset = 12
	tooltipPad    = 4
)

// Chart is what BarChart paints: a chart.Drawable that can also size itself.
type Chart interface {
	chart.Drawable
	PreferredContentSize(available int) (int, int)
}

// BarChart is a Fyne widget painting a Chart and showing a tooltip for the
// bar under the mouse.
type BarChart struct {
	widget.BaseWidget

	chart     Chart
	available float32

	tooltip    string
	tooltipPos fyne.Position
}

var _ desktop.Hoverable = (*BarChart)(nil)

func NewBarChart(c Chart) *BarChart {
	b := &BarChart{chart: c}
	b.ExtendBaseWidget(b)
	return b
}

// SetAvailableWidth tells the widget how wide its viewport is, so MinSize
// never asks for less than what is visible.
func (b *BarChart) SetAvailableWidth(w float32) {
	b.available = w
}

// Tooltip returns the text currently shown, or "" when no tooltip is visible.
func (b *BarChart) Tooltip() string { return b.tooltip }

func (b *BarChart) MouseIn(ev *desktop.MouseEvent) { b.hover(ev.Position) }

func (b *BarChart) MouseMoved(ev *desktop.MouseEvent) { b.hover(ev.Position) }

func (b *BarChart) MouseOut() { b.setTooltip("", fyne.Position{}) }

func (b *BarChart) hover(pos fyne.Position) {
	hit, ok := b.chart.HitTest(int(pos.X), int(pos.Y))
	if !ok {
		b.setTooltip("", fyne.Position{})
		return
	}
	b.setTooltip(hit.Tooltip(), pos)
}

func (b *BarChart) setTooltip(text string, pos fyne.Position) {
	if text == "" && b.tooltip == "" {
		return
	}
	b.tooltip = text
	b.tooltipPos = pos
	b.Refresh()
}

func (b *BarChart) CreateRenderer() fyne.WidgetRenderer {
	r := &barChartRenderer{
		chart:      b,
		background: canvas.NewRectangle(backgroundColor),
		yAxis:      canvas.NewLine(axisColor),
		xAxis:      canvas.NewLine(axisColor),
		tipBG:      canvas.NewRectangle(tooltipBG),
		tipText:    canvas.NewText("", axisColor),
	}
	r.tipBG.StrokeColor = tooltipBorder
	r.tipBG.StrokeWidth = 1
	r.tipText.TextSize = theme.TextSize()
	r.Layout(b.Size())
	return r
}

type barChartRenderer struct {
	chart *BarChart

	background *canvas.Rectangle
	grid       []*canvas.Line
	yAxis      *canvas.Line
	xAxis      *canvas.Line
	yLabels    []*canvas.Text
	bars       []*canvas.Rectangle
	xLabels    []*canvas.Text
	tipBG      *canvas.Rectangle
	tipText    *canvas.Text

	objects []fyne.CanvasObject
}

func (r *barChartRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	d := r.chart.chart.Render(int(size.Width), int(size.Height))

	r.grid = syncLines(r.grid, len(d.Grid), gridColor)
	for i, l := range d.Grid {
		placeLine(r.grid[i], l)
	}
	placeLine(r.yAxis, d.YAxis)
	placeLine(r.xAxis, d.XAxis)

	r.yLabels = syncTexts(r.yLabels, len(d.YLabels))
	for i, l := range d.YLabels {
		placeText(r.yLabels[i], l)
	}

	r.bars = syncRects(r.bars, len(d.Bars))
	for i, bar := range d.Bars {
		rect := r.bars[i]
		rect.Move(fyne.NewPos(float32(bar.Rect.Pos.X), float32(bar.Rect.Pos.Y)))
		rect.Resize(fyne.NewSize(float32(bar.Rect.Width), float32(bar.Rect.Height)))
	}

	r.xLabels = syncTexts(r.xLabels, len(d.XLabels))
	for i, l := range d.XLabels {
		placeText(r.xLabels[i], l)
	}

	r.layoutTooltip(size)
	r.rebuildObjects()
}

func (r *barChartRenderer) layoutTooltip(size fyne.Size) {
	if r.chart.tooltip == "" {
		r.tipBG.Hide()
		r.tipText.Hide()
		return
	}
	r.tipText.Text = r.chart.tooltip
	ts := r.tipText.MinSize()
	bg := fyne.NewSize(ts.Width+2*tooltipPad, ts.Height+2*tooltipPad)
	x := r.chart.tooltipPos.X + tooltipOffset
	y := r.chart.tooltipPos.Y + tooltipOffset
	if x+bg.Width > size.Width {
		x = size.Width - bg.Width
	}
	if y+bg.Height > size.Height {
		y = size.Height - bg.Height
	}
	r.tipBG.Resize(bg)
	r.tipBG.Move(fyne.NewPos(x, y))
	r.tipText.Move(fyne.NewPos(x+tooltipPad, y+tooltipPad))
	r.tipBG.Show()
	r.tipText.Show()
}

func (r *barChartRenderer) rebuildObjects() {
	objs := make([]fyne.CanvasObject, 0, 6+len(r.grid)+len(r.yLabels)+len(r.bars)+len(r.xLabels))
	objs = append(objs, r.background)
	for _, l := range r.grid {
		objs = append(objs, l)
	}
	objs = append(objs, r.yAxis, r.xAxis)
	for _, t := range r.yLabels {
		objs = append(objs, t)
	}
	for _, b := range r.bars {
		objs = append(objs, b)
	}
	for _, t := range r.xLabels {
		objs = append(objs, t)
	}
	objs = append(objs, r.tipBG, r.tipText)
	r.objects = objs
}

func (r *barChartRenderer) MinSize() fyne.Size {
	w, h := r.chart.chart.PreferredContentSize(int(r.chart.available))
	return fyne.NewSize(float32(w), float32(h))
}

func (r *barChartRenderer) Refresh() {
	r.Layout(r.chart.Size())
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *barChartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *barChartRenderer) Destroy() {}

func syncLines(lines []*canvas.Line, n int, c color.Color) []*canvas.Line {
	for len(lines) < n {
		l := canvas.NewLine(c)
		l.StrokeWidth = 1
		lines = append(lines, l)
	}
	return lines[:n]
}

func syncTexts(texts []*canvas.Text, n int) []*canvas.Text {
	for len(texts) < n {
		t := canvas.NewText("", axisColor)
		t.TextSize = theme.CaptionTextSize()
		texts = append(texts, t)
	}
	return texts[:n]
}

func syncRects(rects []*canvas.Rectangle, n int) []*canvas.Rectangle {
	for len(rects) < n {
		b := canvas.NewRectangle(barColor)
		b.StrokeColor = barBorderColor
		b.StrokeWidth = 1
		rects = append(rects, b)
	}
	return rects[:n]
}

func placeLine(line *canvas.Line, l chart.Line) {
	line.Position1 = fyne.NewPos(float32(l.From.X), float32(l.From.Y))
	line.Position2 = fyne.NewPos(float32(l.To.X), float32(l.To.Y))
}

// placeText positions t so its baseline sits on l.Pos.Y.
func placeText(t *canvas.Text, l chart.Label) {
	t.Text = l.Text
	size := t.MinSize()
	x := float32(l.Pos.X)
	if l.Align == chart.AlignCenter {
		x -= size.Width / 2
	}
	t.Move(fyne.NewPos(x, float32(l.Pos.Y)-size.Height*3/4))
}
