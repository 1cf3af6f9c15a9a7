package chart

// Layout constants in pixels.
const (
	LeftMargin    = 40
	TopMargin     = 20
	BottomMargin  = 30
	ContentHeight = 400

	gridDivisions  = 5
	yLabelOffsetX  = 35
	xLabelBaseline = 20
)

// Point is a pixel position in panel space, origin top-left.
type Point struct {
	X, Y int
}

// Line is a straight segment between two panel points.
type Line struct {
	From, To Point
}

// Rect is an axis-aligned box; Pos is the top-left corner.
type Rect struct {
	Pos           Point
	Width, Height int
}

// Contains reports whether p lies in r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Pos.X && p.X <= r.Pos.X+r.Width &&
		p.Y >= r.Pos.Y && p.Y <= r.Pos.Y+r.Height
}

// Align says which part of a label is anchored at its X coordinate.
type Align int

const (
	AlignLeading Align = iota
	AlignCenter
)

// Label is a piece of text. Pos.Y is the text baseline.
type Label struct {
	Pos   Point
	Text  string
	Align Align
}

// Bar is one painted data bar.
type Bar struct {
	Index int
	Value float64
	Rect  Rect
}

// Drawing is the toolkit-neutral output of Render. Toolkit bindings paint the
// fields in declaration order.
type Drawing struct {
	Width, Height int
	// Plot is the area between the margins.
	Plot      Rect
	Grid      []Line
	YAxis     Line
	XAxis     Line
	YLabels   []Label
	Bars      []Bar
	XLabels   []Label
	MaxValue  float64
	ZoomLevel int
}

// Drawable is anything that can produce drawing instructions for a canvas of
// a given size and answer which bar sits under a pointer.
type Drawable interface {
	Render(width, height int) Drawing
	HitTest(x, y int) (Hit, bool)
}
