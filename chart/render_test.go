package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel() *Model {
	return NewModel([]Value{Some(100), Null(), Some(50)})
}

func TestRenderBarsAtDefaultZoom(t *testing.T) {
	d := sampleModel().Render(500, 400)

	require.Len(t, d.Bars, 2, "null values draw no bar")
	assert.Equal(t, Bar{Index: 0, Value: 100, Rect: Rect{Pos: Point{45, 20}, Width: 15, Height: 350}}, d.Bars[0])
	assert.Equal(t, Bar{Index: 2, Value: 50, Rect: Rect{Pos: Point{85, 195}, Width: 15, Height: 175}}, d.Bars[1])
	assert.Equal(t, 100.0, d.MaxValue)
	assert.Equal(t, 1, d.ZoomLevel)
}

func TestRenderAxesAndGrid(t *testing.T) {
	d := sampleModel().Render(500, 400)

	assert.Equal(t, Line{Point{40, 20}, Point{40, 370}}, d.YAxis)
	assert.Equal(t, Line{Point{40, 370}, Point{495, 370}}, d.XAxis)
	assert.Equal(t, Rect{Pos: Point{40, 20}, Width: 455, Height: 350}, d.Plot)

	require.Len(t, d.YLabels, 6)
	wantText := []string{"0", "20", "40", "60", "80", "100"}
	wantY := []int{370, 300, 230, 160, 90, 20}
	for k, l := range d.YLabels {
		assert.Equal(t, wantText[k], l.Text)
		assert.Equal(t, Point{5, wantY[k]}, l.Pos)
	}

	require.Len(t, d.Grid, 5, "no grid line at zero")
	for k, g := range d.Grid {
		assert.Equal(t, Line{Point{40, wantY[k+1]}, Point{495, wantY[k+1]}}, g)
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	d := NewModel(nil).Render(800, 400)
	assert.Empty(t, d.Bars)
	assert.Empty(t, d.XLabels)
	assert.Len(t, d.YLabels, 6)
	assert.Len(t, d.Grid, 5)
	assert.Equal(t, 1.0, d.MaxValue)
}

func TestRenderNegativeValueHasNoHeight(t *testing.T) {
	d := NewModel(Values(-10, 10)).Render(300, 400)
	require.Len(t, d.Bars, 2)
	assert.Equal(t, 0, d.Bars[0].Rect.Height)
	assert.Equal(t, 370, d.Bars[0].Rect.Pos.Y)
}

func TestRenderTinyCanvas(t *testing.T) {
	d := sampleModel().Render(10, 10)
	assert.Equal(t, 0, d.Plot.Height)
	for _, b := range d.Bars {
		assert.Equal(t, 0, b.Rect.Height)
	}
}

func TestRenderBarPositionsAdvanceMonotonically(t *testing.T) {
	m := NewModel(Values(1, 2, 3, 4, 5, 6))
	for level := MinZoom; level <= MaxZoom; level++ {
		d := m.Render(1000, 400)
		stride := m.Zoom().Stride()
		for i, b := range d.Bars {
			assert.Equal(t, LeftMargin+m.Zoom().BarSpacing()+i*stride, b.Rect.Pos.X)
			assert.Equal(t, m.BarStart(i), b.Rect.Pos.X)
		}
		m.ZoomIn()
	}
}

func TestItemLabelThreshold(t *testing.T) {
	vals := make([]Value, 25)
	for i := range vals {
		vals[i] = Some(float64(i + 1))
	}
	m := NewModel(vals)

	labelled := func() []int {
		var idx []int
		d := m.Render(2000, 400)
		for _, l := range d.XLabels {
			for _, b := range d.Bars {
				if l.Pos.X == b.Rect.Pos.X+b.Rect.Width/2 {
					idx = append(idx, b.Index)
				}
			}
		}
		return idx
	}

	assert.Equal(t, []int{0, 10, 20}, labelled(), "level 1")
	m.ZoomIn()
	assert.Equal(t, 20, m.Zoom().BarWidth())
	assert.Equal(t, []int{0, 10, 20}, labelled(), "level 2 is not wider than 20px")
	m.ZoomIn()
	assert.Len(t, labelled(), 25, "level 3 labels every bar")
}

func TestItemLabelPlacement(t *testing.T) {
	d := sampleModel().Render(500, 400)
	require.Len(t, d.XLabels, 1)
	assert.Equal(t, Label{Pos: Point{52, 390}, Text: "Item 1", Align: AlignCenter}, d.XLabels[0])
}
