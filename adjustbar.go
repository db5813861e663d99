package gioplot

import (
	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// AdjustmentBar presents an Adjustment as a scrollbar. Dragging the
// indicator or scrolling over the bar moves the adjustment's value,
// which in turn scrolls any axes attached to the adjustment.
type AdjustmentBar struct {
	Adjustment *Adjustment
	bar        widget.Scrollbar
}

func (b *AdjustmentBar) Layout(gtx C, th *material.Theme, axis layout.Axis) D {
	adj := b.Adjustment
	span := adj.Upper() - adj.Lower()
	if span <= 0 {
		span = 1
	}
	if dist := b.bar.ScrollDistance(); dist != 0 {
		adj.SetValue(adj.Value() + float64(dist)*span)
	}
	start := (adj.Value() - adj.Lower()) / span
	end := (adj.Value() + adj.PageSize() - adj.Lower()) / span
	return material.Scrollbar(th, &b.bar).Layout(gtx, axis, float32(start), float32(end))
}
