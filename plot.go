package gioplot

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
)

// plotBorder is the spacing in dp between the plot area and each axis
// band, and between stacked bands.
const plotBorder = 2

type plotAxisData struct {
	pack         PackType
	orientation  layout.Axis
	hidden       bool
	band         image.Rectangle
	cancelUpdate func()
}

type plotDatasetData struct {
	solo         bool
	cancelUpdate func()
}

// Plot composes axes and datasets into a chart. Axes occupy bands
// around a central plot area; datasets and the current axis pair's
// grid draw inside it. Axes and datasets may be shared across plots;
// membership is reference counted so a shared axis only detaches when
// its last user removes it.
type Plot struct {
	axes     objectBag[*Axis, *plotAxisData]
	datasets objectBag[Dataset, *plotDatasetData]

	// The axis pair whose grid draws in the plot area.
	xAxis *Axis
	yAxis *Axis

	title   string
	fill    color.NRGBA
	hasFill bool

	soloCount int

	update updateList
}

func NewPlot() *Plot {
	return &Plot{}
}

// OnUpdate registers fn to run when the plot or any of its members
// changes. The returned func cancels the registration.
func (p *Plot) OnUpdate(fn func()) func() {
	return p.update.add(fn)
}

// SetTitle sets the plot title shown by the plot's legend.
func (p *Plot) SetTitle(title string) {
	p.title = title
	p.update.notify()
}

func (p *Plot) Title() string { return p.title }

// SetFill sets the background color of the plot area.
func (p *Plot) SetFill(col color.NRGBA) {
	p.fill = col
	p.hasFill = true
	p.update.notify()
}

// ClearFill removes the plot area background.
func (p *Plot) ClearFill() {
	p.hasFill = false
	p.update.notify()
}

// AddAxis adds an axis band with the given orientation and pack side.
// Adding an axis already in the plot bumps its reference count and
// keeps its existing placement; AddAxis reports whether that happened.
func (p *Plot) AddAxis(a *Axis, orientation layout.Axis, pack PackType) bool {
	data := &plotAxisData{
		pack:         pack,
		orientation:  orientation,
		cancelUpdate: a.OnUpdate(p.update.notify),
	}
	if p.axes.add(a, data) {
		data.cancelUpdate()
		return true
	}
	p.update.notify()
	return false
}

// RemoveAxis drops one reference to the axis and reports whether it
// was the last, detaching the axis entirely when it was.
func (p *Plot) RemoveAxis(a *Axis) bool {
	data, ok := p.axes.get(a)
	if !ok {
		return false
	}
	if !p.axes.remove(a) {
		return false
	}
	data.cancelUpdate()
	if p.xAxis == a {
		p.xAxis = nil
	}
	if p.yAxis == a {
		p.yAxis = nil
	}
	p.update.notify()
	return true
}

// HideAxis hides or shows an axis band without removing it. A hidden
// axis keeps its membership but occupies no space and draws nothing.
func (p *Plot) HideAxis(a *Axis, hidden bool) {
	if data, ok := p.axes.get(a); ok {
		data.hidden = hidden
		p.update.notify()
	}
}

// SetCurrentAxes selects which axis pair's grid draws in the plot
// area. Both must already be members of the plot.
func (p *Plot) SetCurrentAxes(x, y *Axis) {
	if x != nil && !p.axes.contains(x) {
		return
	}
	if y != nil && !p.axes.contains(y) {
		return
	}
	p.xAxis = x
	p.yAxis = y
	p.update.notify()
}

// CurrentAxes returns the axis pair whose grid is drawn.
func (p *Plot) CurrentAxes() (x, y *Axis) {
	return p.xAxis, p.yAxis
}

// AddDataset adds a dataset, automatically adding its axes as
// horizontal and vertical start-packed bands. The axes gain a
// reference on every call, even when the dataset is already a member.
// The first dataset's axes become the plot's current grid axes.
// AddDataset reports whether the dataset was already a member.
func (p *Plot) AddDataset(ds Dataset) bool {
	data := &plotDatasetData{
		cancelUpdate: ds.OnUpdate(p.update.notify),
	}
	existing := p.datasets.add(ds, data)
	if existing {
		data.cancelUpdate()
	}
	x, y := ds.Axes()
	if x != nil {
		p.AddAxis(x, layout.Horizontal, PackStart)
	}
	if y != nil {
		p.AddAxis(y, layout.Vertical, PackStart)
	}
	if p.xAxis == nil && p.yAxis == nil && x != nil && y != nil {
		p.xAxis = x
		p.yAxis = y
	}
	p.update.notify()
	return existing
}

// RemoveDataset drops one reference to the dataset and one reference
// to each of its axes, and reports whether the dataset was fully
// removed.
func (p *Plot) RemoveDataset(ds Dataset) bool {
	data, ok := p.datasets.get(ds)
	if !ok {
		return false
	}
	x, y := ds.Axes()
	if x != nil {
		p.RemoveAxis(x)
	}
	if y != nil {
		p.RemoveAxis(y)
	}
	removed := p.datasets.remove(ds)
	if removed {
		data.cancelUpdate()
		if data.solo {
			p.soloCount--
		}
	}
	p.update.notify()
	return removed
}

// FindDataset returns the member dataset with the given nickname, or
// nil.
func (p *Plot) FindDataset(nickname string) Dataset {
	var found Dataset
	p.datasets.each(func(ds Dataset, _ *plotDatasetData) bool {
		if ds.Nickname() == nickname {
			found = ds
			return false
		}
		return true
	})
	return found
}

// SetSolo marks a dataset solo. While any dataset is solo, only solo
// datasets draw.
func (p *Plot) SetSolo(ds Dataset, solo bool) {
	data, ok := p.datasets.get(ds)
	if !ok || data.solo == solo {
		return
	}
	data.solo = solo
	if solo {
		p.soloCount++
	} else {
		p.soloCount--
	}
	p.update.notify()
}

// Solo reports whether the dataset is marked solo.
func (p *Plot) Solo(ds Dataset) bool {
	data, ok := p.datasets.get(ds)
	return ok && data.solo
}

// AxisAt returns the axis whose band contains the point, in the
// coordinate space of the plot's last layout, or nil.
func (p *Plot) AxisAt(pt image.Point) *Axis {
	var found *Axis
	p.axes.each(func(a *Axis, data *plotAxisData) bool {
		if !data.hidden && pt.In(data.band) {
			found = a
			return false
		}
		return true
	})
	return found
}

// layoutAxes computes each axis's band around the central plot area
// and returns the area. The first pass totals the space each side
// needs; the second stretches each band along the resulting area,
// stacking outward in membership order.
func (p *Plot) layoutAxes(gtx C, content image.Rectangle) image.Rectangle {
	gap := gtx.Dp(plotBorder)
	var xStart, xEnd, yStart, yEnd int
	p.axes.each(func(a *Axis, data *plotAxisData) bool {
		if data.hidden {
			return true
		}
		sz := a.Size(gtx) + gap
		switch {
		case data.orientation == layout.Horizontal && data.pack == PackStart:
			yStart += sz
		case data.orientation == layout.Horizontal && data.pack == PackEnd:
			yEnd += sz
		case data.orientation == layout.Vertical && data.pack == PackStart:
			xStart += sz
		default:
			xEnd += sz
		}
		return true
	})
	area := image.Rect(
		content.Min.X+xStart, content.Min.Y+yEnd,
		content.Max.X-xEnd, content.Max.Y-yStart,
	)

	var usedBottom, usedTop, usedLeft, usedRight int
	p.axes.each(func(a *Axis, data *plotAxisData) bool {
		if data.hidden {
			data.band = image.Rectangle{}
			return true
		}
		sz := a.Size(gtx)
		switch {
		case data.orientation == layout.Horizontal && data.pack == PackStart:
			top := area.Max.Y + gap + usedBottom
			data.band = image.Rect(area.Min.X, top, area.Max.X, top+sz)
			usedBottom += sz + gap
		case data.orientation == layout.Horizontal && data.pack == PackEnd:
			bottom := area.Min.Y - gap - usedTop
			data.band = image.Rect(area.Min.X, bottom-sz, area.Max.X, bottom)
			usedTop += sz + gap
		case data.orientation == layout.Vertical && data.pack == PackStart:
			right := area.Min.X - gap - usedLeft
			data.band = image.Rect(right-sz, area.Min.Y, right, area.Max.Y)
			usedLeft += sz + gap
		default:
			left := area.Max.X + gap + usedRight
			data.band = image.Rect(left, area.Min.Y, left+sz, area.Max.Y)
			usedRight += sz + gap
		}
		return true
	})
	return area
}

// Layout draws the plot into the available constraint space: axis
// bands first, then the area fill, datasets, and finally the current
// axis pair's grid.
func (p *Plot) Layout(gtx C, th *material.Theme) D {
	size := gtx.Constraints.Max
	content := image.Rectangle{Max: size}
	defer clip.Rect(content).Push(gtx.Ops).Pop()

	area := p.layoutAxes(gtx, content)

	p.axes.each(func(a *Axis, data *plotAxisData) bool {
		if data.hidden || data.band.Empty() {
			return true
		}
		trans := op.Offset(data.band.Min).Push(gtx.Ops)
		cl := clip.Rect(image.Rectangle{Max: data.band.Size()}).Push(gtx.Ops)
		a.DrawAxis(gtx, th, data.orientation, data.pack, data.band.Size())
		cl.Pop()
		trans.Pop()
		return true
	})

	trans := op.Offset(area.Min).Push(gtx.Ops)
	cl := clip.Rect(image.Rectangle{Max: area.Size()}).Push(gtx.Ops)
	if p.hasFill {
		paint.Fill(gtx.Ops, p.fill)
	}
	p.datasets.each(func(ds Dataset, data *plotDatasetData) bool {
		if p.soloCount > 0 && !data.solo {
			return true
		}
		ds.Draw(gtx, area.Size())
		return true
	})
	if p.xAxis != nil {
		p.xAxis.DrawGrid(gtx, th, layout.Horizontal, area.Size())
	}
	if p.yAxis != nil {
		p.yAxis.DrawGrid(gtx, th, layout.Vertical, area.Size())
	}
	cl.Pop()
	trans.Pop()

	return D{Size: size}
}
