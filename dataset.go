package gioplot

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/x/stroke"
)

// Dataset is a named series of control points drawable against an X/Y
// axis pair. Implementations decide how the points are rendered.
type Dataset interface {
	// Nickname is the dataset's identity within a plot.
	Nickname() string
	Legend() string
	LineStroke() color.NRGBA
	LineStyle() LineStyle
	// Axes returns the dataset's X and Y axes. Either may be nil, in
	// which case Draw does nothing.
	Axes() (x, y *Axis)
	// Draw renders the dataset into a plot area of the given size.
	Draw(gtx C, size image.Point)
	// Invalidate discards any cached derived state.
	Invalidate()
	// OnUpdate registers fn to run when the dataset changes. The
	// returned func cancels the registration.
	OnUpdate(fn func()) func()
}

// LineDataset draws straight segments between consecutive control
// points.
type LineDataset struct {
	points     []Point
	nickname   string
	legend     string
	lineStroke color.NRGBA
	lineStyle  LineStyle
	xAxis      *Axis
	yAxis      *Axis

	update updateList
}

func NewLineDataset(nickname string) *LineDataset {
	return &LineDataset{
		nickname:   nickname,
		lineStroke: color.NRGBA{A: 0xff},
	}
}

func (d *LineDataset) Nickname() string        { return d.nickname }
func (d *LineDataset) Legend() string          { return d.legend }
func (d *LineDataset) LineStroke() color.NRGBA { return d.lineStroke }
func (d *LineDataset) LineStyle() LineStyle    { return d.lineStyle }
func (d *LineDataset) Axes() (x, y *Axis)      { return d.xAxis, d.yAxis }
func (d *LineDataset) Points() []Point         { return d.points }

func (d *LineDataset) OnUpdate(fn func()) func() {
	return d.update.add(fn)
}

// SetPoints replaces the control points. Points must be sorted by
// increasing X.
func (d *LineDataset) SetPoints(points []Point) {
	d.points = points
	d.update.notify()
}

// AddPoint appends a control point. The caller is responsible for
// keeping X values increasing.
func (d *LineDataset) AddPoint(p Point) {
	d.points = append(d.points, p)
	d.update.notify()
}

func (d *LineDataset) SetLegend(legend string) {
	d.legend = legend
	d.update.notify()
}

func (d *LineDataset) SetLineStroke(col color.NRGBA) {
	d.lineStroke = col
	d.update.notify()
}

func (d *LineDataset) SetLineStyle(style LineStyle) {
	d.lineStyle = style
	d.update.notify()
}

// SetAxes sets both axis references. A dataset draws nothing until
// both are non-nil.
func (d *LineDataset) SetAxes(x, y *Axis) {
	d.xAxis = x
	d.yAxis = y
	d.update.notify()
}

func (d *LineDataset) SetXAxis(x *Axis) {
	d.xAxis = x
	d.update.notify()
}

func (d *LineDataset) SetYAxis(y *Axis) {
	d.yAxis = y
	d.update.notify()
}

// Invalidate is a no-op; line datasets derive nothing from their
// points.
func (d *LineDataset) Invalidate() {}

func (d *LineDataset) Draw(gtx C, size image.Point) {
	if d.xAxis == nil || d.yAxis == nil || len(d.points) < 2 {
		return
	}
	strokeSegments(gtx, d.segments(d.points, size), float32(gtx.Dp(1)), d.lineStyle, d.lineStroke)
}

// segments projects points through the dataset's axes into a connected
// path.
func (d *LineDataset) segments(points []Point, size image.Point) []stroke.Segment {
	segs := make([]stroke.Segment, 0, len(points))
	for i, p := range points {
		pt := f32.Pt(
			float32(d.xAxis.Project(p.X, size.X)),
			float32(d.yAxis.Project(p.Y, -size.Y)),
		)
		if i == 0 {
			segs = append(segs, stroke.MoveTo(pt))
		} else {
			segs = append(segs, stroke.LineTo(pt))
		}
	}
	return segs
}
