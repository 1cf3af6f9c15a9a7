// Package chart holds the bar chart geometry: the dataset, the zoom level,
// the mapping from values to pixels and the pointer hit test. It has no
// dependency on a UI toolkit.
//
// A Model is not safe for concurrent use. Drive it from the UI goroutine.
package chart

import "slices"

// Model owns the dataset and zoom state of one bar chart.
type Model struct {
	data     []Value
	maxValue float64
	zoom     Zoom

	// last canvas size passed to Render, used by HitTest
	width, height int

	listeners []func()
}

var _ Drawable = (*Model)(nil)

// NewModel returns a Model showing values at zoom level 1.
func NewModel(values []Value) *Model {
	m := &Model{}
	m.setData(values)
	return m
}

// OnChange registers fn to be called after every state change that affects
// layout or painting.
func (m *Model) OnChange(fn func()) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

func (m *Model) changed() {
	for _, fn := range m.listeners {
		fn()
	}
}

// SetData replaces the dataset and resets the zoom level.
func (m *Model) SetData(values []Value) {
	m.setData(values)
	m.changed()
}

func (m *Model) setData(values []Value) {
	m.data = slices.Clone(values)
	m.maxValue = MaxValue(m.data)
	m.zoom.Reset()
}

// ZoomIn widens the bars by one level. It is a no-op at MaxZoom.
func (m *Model) ZoomIn() bool {
	if !m.zoom.In() {
		return false
	}
	m.changed()
	return true
}

// ZoomOut narrows the bars by one level. It is a no-op at MinZoom.
func (m *Model) ZoomOut() bool {
	if !m.zoom.Out() {
		return false
	}
	m.changed()
	return true
}

// ResetZoom returns to zoom level 1.
func (m *Model) ResetZoom() {
	m.zoom.Reset()
	m.changed()
}

// Len is the number of slots in the dataset, missing values included.
func (m *Model) Len() int { return len(m.data) }

// Data returns a copy of the dataset.
func (m *Model) Data() []Value { return slices.Clone(m.data) }

func (m *Model) MaxValue() float64 { return m.maxValue }
func (m *Model) Zoom() Zoom        { return m.zoom }

// PreferredContentWidth is the width needed to show every bar at the current
// zoom level, never less than available.
func (m *Model) PreferredContentWidth(available int) int {
	return max(available, len(m.data)*m.zoom.Stride()+m.zoom.BarSpacing())
}

// PreferredContentSize pairs PreferredContentWidth with the fixed content
// height.
func (m *Model) PreferredContentSize(available int) (int, int) {
	return m.PreferredContentWidth(available), ContentHeight
}

// plotHeight is the height of the area between top and bottom margins.
func plotHeight(height int) int {
	return max(0, height-TopMargin-BottomMargin)
}
