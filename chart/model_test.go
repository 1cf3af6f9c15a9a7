package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxValue(t *testing.T) {
	cases := []struct {
		name string
		in   []Value
		want float64
	}{
		{"empty", nil, 1},
		{"all null", []Value{Null(), Null()}, 1},
		{"all zero", Values(0, 0, 0), 1},
		{"all negative", Values(-3, -1), 1},
		{"mixed", []Value{Some(100), Null(), Some(50)}, 100},
		{"fractional", Values(0.25, 0.5), 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MaxValue(c.in)
			assert.Equal(t, c.want, got)
			assert.Greater(t, got, 0.0)
			for _, v := range c.in {
				if v.Valid {
					assert.GreaterOrEqual(t, got, v.Float64)
				}
			}
		})
	}
}

func TestSomeNaNIsNull(t *testing.T) {
	assert.False(t, Some(math.NaN()).Valid)
	assert.True(t, Some(0).Valid)
}

func TestSetDataResetsZoomAndMax(t *testing.T) {
	m := NewModel(Values(10, 20))
	m.ZoomIn()
	m.ZoomIn()
	require.Equal(t, 3, m.Zoom().Level())

	m.SetData(Values(5, 400, 7))
	assert.Equal(t, 1, m.Zoom().Level())
	assert.Equal(t, 400.0, m.MaxValue())
	assert.Equal(t, 3, m.Len())
}

func TestSetDataCopiesInput(t *testing.T) {
	in := Values(1, 2, 3)
	m := NewModel(in)
	in[0] = Some(999)
	assert.Equal(t, 1.0, m.Data()[0].Float64)
	assert.Equal(t, 3.0, m.MaxValue())
}

func TestZoomOperations(t *testing.T) {
	m := NewModel(Values(1))
	assert.False(t, m.ZoomOut())
	assert.Equal(t, 1, m.Zoom().Level())

	for i := 0; i < 4; i++ {
		assert.True(t, m.ZoomIn())
	}
	assert.False(t, m.ZoomIn())
	assert.Equal(t, 5, m.Zoom().Level())
	assert.Equal(t, 35, m.Zoom().BarWidth())
	assert.Equal(t, 13, m.Zoom().BarSpacing())

	m.ResetZoom()
	assert.Equal(t, 1, m.Zoom().Level())
}

func TestChangeListeners(t *testing.T) {
	m := NewModel(Values(1, 2))
	calls := 0
	m.OnChange(func() { calls++ })
	m.OnChange(nil)

	m.ZoomOut() // no-op at level 1
	assert.Equal(t, 0, calls)
	m.ZoomIn()
	assert.Equal(t, 1, calls)
	m.ResetZoom()
	assert.Equal(t, 2, calls)
	m.ResetZoom()
	assert.Equal(t, 3, calls)
	m.SetData(nil)
	assert.Equal(t, 4, calls)
}

func TestPreferredContentWidth(t *testing.T) {
	m := NewModel([]Value{Some(100), Null(), Some(50)})
	assert.Equal(t, 500, m.PreferredContentWidth(500))
	assert.Equal(t, 65, m.PreferredContentWidth(0))

	big := NewModel(make([]Value, 200))
	assert.Equal(t, 200*20+5, big.PreferredContentWidth(800))
	for i := 0; i < 4; i++ {
		big.ZoomIn()
	}
	w, h := big.PreferredContentSize(800)
	assert.Equal(t, 200*48+13, w)
	assert.Equal(t, ContentHeight, h)
}
