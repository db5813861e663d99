package gioplot

import (
	"image"

	"gioui.org/f32"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/x/stroke"
)

// Sample draws a short line in a dataset's stroke color and style, for
// use in legends and dataset pickers. Curve datasets with markers
// enabled get a marker at the line's midpoint.
type Sample struct {
	Dataset Dataset
	Length  unit.Dp
}

func (s Sample) Layout(gtx C) D {
	length := gtx.Dp(s.Length)
	if length <= 0 {
		length = gtx.Dp(24)
	}
	height := gtx.Dp(markerRadius)*2 + gtx.Dp(2)
	mid := float32(height) / 2
	strokeSegments(gtx, []stroke.Segment{
		stroke.MoveTo(f32.Pt(0, mid)),
		stroke.LineTo(f32.Pt(float32(length), mid)),
	}, float32(gtx.Dp(1)), s.Dataset.LineStyle(), s.Dataset.LineStroke())
	if c, ok := s.Dataset.(*CurveDataset); ok && c.showMarkers {
		r := gtx.Dp(markerRadius)
		center := image.Pt(length/2, height/2)
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
	return D{Size: image.Pt(length, height)}
}
