package gioplot

import (
	"image"
	"image/color"

	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// markerRadius is the radius in dp of curve control-point markers.
const markerRadius = 3

// CurveDataset draws a natural cubic spline through its control
// points, resampled at roughly one point per four pixels of render
// width. The resampled curve is cached per width so scrolling a frame
// at a stable size does not re-solve the spline.
type CurveDataset struct {
	LineDataset

	markerStroke color.NRGBA
	markerFill   color.NRGBA
	showMarkers  bool

	cache      []Point
	cacheWidth int
}

func NewCurveDataset(nickname string) *CurveDataset {
	c := &CurveDataset{
		markerStroke: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	c.nickname = nickname
	c.lineStroke = color.NRGBA{A: 0xff}
	return c
}

func (c *CurveDataset) ShowMarkers() bool { return c.showMarkers }

func (c *CurveDataset) SetShowMarkers(show bool) {
	c.showMarkers = show
	c.update.notify()
}

func (c *CurveDataset) SetMarkerStroke(col color.NRGBA) {
	c.markerStroke = col
	c.update.notify()
}

func (c *CurveDataset) SetMarkerFill(col color.NRGBA) {
	c.markerFill = col
	c.update.notify()
}

// SetPoints replaces the control points and discards the resample
// cache.
func (c *CurveDataset) SetPoints(points []Point) {
	c.Invalidate()
	c.LineDataset.SetPoints(points)
}

// AddPoint appends a control point and discards the resample cache.
func (c *CurveDataset) AddPoint(p Point) {
	c.Invalidate()
	c.LineDataset.AddPoint(p)
}

// Invalidate discards the resampled curve so the next draw re-solves
// the spline.
func (c *CurveDataset) Invalidate() {
	c.cache = nil
}

// ensureCache resamples the spline over the X axis's display range if
// the cache is missing or was built for a different width.
func (c *CurveDataset) ensureCache(width int) {
	if c.cache != nil && c.cacheWidth == width {
		return
	}
	c.cacheWidth = width
	min, max := c.xAxis.DisplayRange()
	c.cache = SplinePoints(c.points, min, max, width/4+1)
}

func (c *CurveDataset) Draw(gtx C, size image.Point) {
	if c.xAxis == nil || c.yAxis == nil || len(c.points) < 2 {
		return
	}
	c.ensureCache(size.X)
	if len(c.cache) >= 2 {
		strokeSegments(gtx, c.segments(c.cache, size), float32(gtx.Dp(1)), c.lineStyle, c.lineStroke)
	}
	if c.showMarkers {
		c.drawMarkers(gtx, size)
	}
}

// drawMarkers places a filled, outlined circle at each original
// control point, not at the resampled curve points.
func (c *CurveDataset) drawMarkers(gtx C, size image.Point) {
	r := gtx.Dp(markerRadius)
	for _, p := range c.points {
		center := image.Pt(
			int(c.xAxis.Project(p.X, size.X)),
			int(c.yAxis.Project(p.Y, -size.Y)),
		)
		bounds := image.Rectangle{
			Min: center.Sub(image.Pt(r, r)),
			Max: center.Add(image.Pt(r, r)),
		}
		circle := clip.Ellipse(bounds)
		paint.FillShape(gtx.Ops, c.markerFill, circle.Op(gtx.Ops))
		paint.FillShape(gtx.Ops, c.markerStroke, clip.Stroke{
			Path:  circle.Path(gtx.Ops),
			Width: float32(gtx.Dp(1)),
		}.Op())
	}
}
