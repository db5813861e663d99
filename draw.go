package gioplot

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/stroke"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// strokeSegments strokes a path with the dash pattern of the given line
// style. Dash lengths scale with the stroke width.
func strokeSegments(gtx C, segs []stroke.Segment, width float32, style LineStyle, col color.NRGBA) {
	s := stroke.Stroke{
		Path:  stroke.Path{Segments: segs},
		Width: width,
	}
	if dashes := style.Dashes(); dashes != nil {
		scaled := make([]float32, len(dashes))
		for i, d := range dashes {
			scaled[i] = d * width
		}
		s.Dashes.Dashes = scaled
	}
	paint.FillShape(gtx.Ops, col, s.Op(gtx.Ops))
}

// recordLabel lays out a label into a macro so the caller can position
// it after measuring.
func recordLabel(gtx C, th *material.Theme, size unit.Sp, txt string) (D, op.CallOp) {
	gtx.Constraints = layout.Constraints{
		Max: image.Pt(math.MaxInt16, math.MaxInt16),
	}
	macro := op.Record(gtx.Ops)
	dims := material.Label(th, size, txt).Layout(gtx)
	return dims, macro.Stop()
}
