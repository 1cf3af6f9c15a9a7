// Package ui binds the chart model to Fyne: the bar chart widget, the
// scrolling viewport and the control buttons around it.
package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"bar-ui/chart"
)

// Source supplies a fresh dataset on demand.
type Source interface {
	Generate() []chart.Value
}

// Shell is the window content: a horizontally scrolling chart above a row of
// zoom and data buttons.
type Shell struct {
	model  *chart.Model
	source Source

	chart    *BarChart
	scroll   *container.Scroll
	viewport *fyne.Container
	status   *widget.Label

	zoomInButton     *widget.Button
	zoomOutButton    *widget.Button
	resetZoomButton  *widget.Button
	regenerateButton *widget.Button

	content fyne.CanvasObject
}

// NewShell builds the window content around model and registers for its
// change notifications. source feeds the Regenerate Data button.
func NewShell(model *chart.Model, source Source) *Shell {
	s := &Shell{model: model, source: source}

	s.chart = NewBarChart(model)
	s.scroll = container.NewHScroll(s.chart)
	s.viewport = container.New(&viewportLayout{chart: s.chart}, s.scroll)
	s.status = widget.NewLabel("")

	s.zoomInButton = widget.NewButton("Zoom In (Show Less)", s.ZoomIn)
	s.zoomInButton.Importance = widget.HighImportance
	s.zoomOutButton = widget.NewButton("Zoom Out (Show More)", s.ZoomOut)
	s.zoomOutButton.Importance = widget.HighImportance
	s.resetZoomButton = widget.NewButton("Reset Zoom", s.ResetZoom)
	s.resetZoomButton.Importance = widget.HighImportance
	s.regenerateButton = widget.NewButton("Regenerate Data", s.Regenerate)
	s.regenerateButton.Importance = widget.SuccessImportance

	controls := container.NewHBox(
		layout.NewSpacer(),
		s.zoomInButton,
		s.zoomOutButton,
		s.resetZoomButton,
		s.regenerateButton,
		layout.NewSpacer(),
	)
	bottom := container.NewVBox(container.NewPadded(controls), container.NewCenter(s.status))
	s.content = container.NewBorder(nil, bottom, nil, nil, s.viewport)

	model.OnChange(s.relayout)
	s.updateStatus()
	return s
}

func (s *Shell) Content() fyne.CanvasObject { return s.content }

// Chart returns the chart widget, mainly for tests.
func (s *Shell) Chart() *BarChart { return s.chart }

func (s *Shell) ZoomIn() {
	if !s.model.ZoomIn() {
		log.Printf("Zoom in ignored, already at level %d", chart.MaxZoom)
		return
	}
	log.Printf("Zoomed in to level %d", s.model.Zoom().Level())
}

func (s *Shell) ZoomOut() {
	if !s.model.ZoomOut() {
		log.Printf("Zoom out ignored, already at level %d", chart.MinZoom)
		return
	}
	log.Printf("Zoomed out to level %d", s.model.Zoom().Level())
}

func (s *Shell) ResetZoom() {
	s.model.ResetZoom()
	log.Printf("Zoom reset to level %d", chart.MinZoom)
}

// Regenerate replaces the dataset with a new one from the source.
func (s *Shell) Regenerate() {
	values := s.source.Generate()
	log.Printf("Regenerated %d data points", len(values))
	s.model.SetData(values)
}

// AddShortcuts binds the keyboard equivalents of the buttons on c. closeFn is
// run for Ctrl/Cmd+W.
func (s *Shell) AddShortcuts(c fyne.Canvas, closeFn func()) {
	c.SetOnTypedRune(func(r rune) {
		switch r {
		case '+', '=':
			s.ZoomIn()
		case '-':
			s.ZoomOut()
		case '0':
			s.ResetZoom()
		}
	})
	for _, mod := range []fyne.KeyModifier{fyne.KeyModifierControl, fyne.KeyModifierSuper} {
		c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: mod}, func(fyne.Shortcut) { s.Regenerate() })
		if closeFn != nil {
			c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { closeFn() })
		}
	}
}

// relayout runs after every model change: the content width depends on the
// zoom level and the data length, so the scroll container is re-measured as
// well as the chart repainted.
func (s *Shell) relayout() {
	s.updateStatus()
	s.chart.Refresh()
	s.scroll.Refresh()
}

func (s *Shell) updateStatus() {
	z := s.model.Zoom()
	s.status.SetText(fmt.Sprintf("Zoom %d/%d · %d items", z.Level(), chart.MaxZoom, s.model.Len()))
}
