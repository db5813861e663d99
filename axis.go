package gioplot

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/stroke"
)

// axisGap is the spacing in dp between an axis's ticks, labels, and
// legend.
const axisGap = 2

// autoIntervals is the ladder of candidate major intervals used when
// auto interval selection is enabled, widest first. The largest rung
// not exceeding the mode-space span wins; spans below 10 get 1.
var autoIntervals = [...]float64{10000, 1000, 100, 10}

// Axis maps data values onto a pixel extent under one of three
// projection modes and generates tick, label, and grid positions for
// that mapping. An axis may be shared by several datasets and several
// plots, and may be attached to an Adjustment to scroll a sub-window
// of its full range.
type Axis struct {
	mode           AxisMode
	lowerBound     float64
	upperBound     float64
	majorInterval  float64
	autoInterval   bool
	minorDivisions int

	tickSize   unit.Dp
	labelSize  unit.Sp
	legendSize unit.Sp
	legend     string

	majorGridStyle LineStyle
	minorGridStyle LineStyle

	// Derived from mode and bounds, or from the adjustment window when
	// one is attached.
	lowerMode     float64
	upperMode     float64
	minorInterval float64

	adjust       *Adjustment
	cancelAdjust []func()
	syncing      bool

	update updateList
}

// NewAxis returns an axis over [lower, upper] in the given mode, with
// automatic major interval selection and five minor divisions.
func NewAxis(mode AxisMode, lower, upper float64) *Axis {
	a := &Axis{
		mode:           mode,
		lowerBound:     lower,
		upperBound:     upper,
		autoInterval:   true,
		minorDivisions: 5,
		tickSize:       10,
		labelSize:      10,
		legendSize:     14,
		majorGridStyle: LineStyleSolid,
		minorGridStyle: LineStyleDash,
	}
	a.recompute()
	return a
}

// OnUpdate registers fn to run whenever the axis changes in a way that
// requires a redraw. The returned func cancels the registration.
func (a *Axis) OnUpdate(fn func()) func() {
	return a.update.add(fn)
}

func (a *Axis) modeTransform(v float64) float64 {
	switch a.mode {
	case AxisLogOctave:
		return math.Log2(v)
	case AxisLogDecade:
		return math.Log10(v)
	default:
		return v
	}
}

func (a *Axis) modeInverse(v float64) float64 {
	switch a.mode {
	case AxisLogOctave:
		return math.Exp2(v)
	case AxisLogDecade:
		return math.Pow(10, v)
	default:
		return v
	}
}

// recompute rebuilds the derived mode-space bounds and intervals. With
// an adjustment attached the display window tracks the adjustment, so
// bound changes do not reset a scrolled view.
func (a *Axis) recompute() {
	if a.upperBound < a.lowerBound {
		log.Printf("axis: bounds inverted (%g > %g), swapping", a.lowerBound, a.upperBound)
		a.lowerBound, a.upperBound = a.upperBound, a.lowerBound
	}
	if a.adjust != nil {
		a.lowerMode = a.adjust.Value()
		a.upperMode = a.adjust.Value() + a.adjust.PageSize()
	} else {
		a.lowerMode = a.modeTransform(a.lowerBound)
		a.upperMode = a.modeTransform(a.upperBound)
	}
	if a.autoInterval {
		span := a.upperMode - a.lowerMode
		a.majorInterval = 1
		for _, rung := range autoIntervals {
			if span >= rung {
				a.majorInterval = rung
				break
			}
		}
	}
	if a.minorDivisions != 0 {
		a.minorInterval = a.majorInterval / float64(a.minorDivisions)
	} else {
		a.minorInterval = 0
	}
}

func (a *Axis) updateBounds() {
	a.recompute()
	a.update.notify()
}

// pushAdjustment reconfigures the attached adjustment to cover the
// full mode-space range, resetting the visible window. Used only when
// an adjustment is first attached.
func (a *Axis) pushAdjustment() {
	if a.adjust == nil || a.syncing {
		return
	}
	lower := a.modeTransform(a.lowerBound)
	upper := a.modeTransform(a.upperBound)
	page := upper - lower
	a.syncing = true
	a.adjust.Configure(lower, lower, upper, page/10, page/2, page)
	a.syncing = false
}

// pushBounds mirrors the axis bounds into the attached adjustment's
// range limits without disturbing its value or page size, so a
// scrolled window survives bound changes.
func (a *Axis) pushBounds() {
	if a.adjust == nil || a.syncing {
		return
	}
	a.syncing = true
	a.adjust.SetLower(a.modeTransform(a.lowerBound))
	a.adjust.SetUpper(a.modeTransform(a.upperBound))
	a.syncing = false
}

func (a *Axis) adjustmentChanged() {
	if a.syncing {
		return
	}
	a.syncing = true
	a.lowerBound = a.modeInverse(a.adjust.Lower())
	a.upperBound = a.modeInverse(a.adjust.Upper())
	a.recompute()
	a.syncing = false
	a.update.notify()
}

func (a *Axis) adjustmentValueChanged() {
	if a.syncing {
		return
	}
	a.lowerMode = a.adjust.Value()
	a.upperMode = a.adjust.Value() + a.adjust.PageSize()
	a.update.notify()
}

// SetAdjustment attaches adj as the axis's scroll window, detaching
// any previous adjustment. The adjustment is reconfigured to span the
// axis's current range. Passing nil detaches.
func (a *Axis) SetAdjustment(adj *Adjustment) {
	for _, cancel := range a.cancelAdjust {
		cancel()
	}
	a.cancelAdjust = nil
	a.adjust = adj
	if adj != nil {
		a.cancelAdjust = append(a.cancelAdjust,
			adj.OnChanged(a.adjustmentChanged),
			adj.OnValueChanged(a.adjustmentValueChanged),
		)
		a.pushAdjustment()
	}
	a.recompute()
	a.update.notify()
}

// Adjustment returns the attached adjustment, or nil.
func (a *Axis) Adjustment() *Adjustment { return a.adjust }

// Configure atomically sets the mode and bounds.
func (a *Axis) Configure(mode AxisMode, lower, upper float64) {
	a.mode = mode
	a.lowerBound = lower
	a.upperBound = upper
	a.recompute()
	a.pushBounds()
	a.update.notify()
}

func (a *Axis) SetMode(mode AxisMode) {
	a.mode = mode
	a.updateBounds()
}

func (a *Axis) SetLowerBound(lower float64) {
	a.lowerBound = lower
	a.recompute()
	a.pushBounds()
	a.update.notify()
}

func (a *Axis) SetUpperBound(upper float64) {
	a.upperBound = upper
	a.recompute()
	a.pushBounds()
	a.update.notify()
}

// SetMajorInterval fixes the major interval in mode-space units and
// disables automatic selection. An interval of 0 re-enables it.
func (a *Axis) SetMajorInterval(interval float64) {
	if interval == 0 {
		a.autoInterval = true
	} else {
		a.autoInterval = false
		a.majorInterval = interval
	}
	a.updateBounds()
}

func (a *Axis) SetAutoInterval(auto bool) {
	a.autoInterval = auto
	a.updateBounds()
}

// SetMinorDivisions sets the number of minor intervals per major
// interval. Zero disables minor ticks and grid lines.
func (a *Axis) SetMinorDivisions(divisions int) {
	a.minorDivisions = divisions
	a.updateBounds()
}

func (a *Axis) SetTickSize(size unit.Dp) {
	a.tickSize = size
	a.update.notify()
}

func (a *Axis) SetLabelSize(size unit.Sp) {
	a.labelSize = size
	a.update.notify()
}

// SetLegend sets the axis legend text. An empty string removes the
// legend and the space it occupies.
func (a *Axis) SetLegend(legend string) {
	a.legend = legend
	a.update.notify()
}

func (a *Axis) SetLegendSize(size unit.Sp) {
	a.legendSize = size
	a.update.notify()
}

func (a *Axis) SetMajorGridStyle(style LineStyle) {
	a.majorGridStyle = style
	a.update.notify()
}

func (a *Axis) SetMinorGridStyle(style LineStyle) {
	a.minorGridStyle = style
	a.update.notify()
}

func (a *Axis) Mode() AxisMode         { return a.mode }
func (a *Axis) MajorInterval() float64 { return a.majorInterval }
func (a *Axis) AutoInterval() bool     { return a.autoInterval }
func (a *Axis) MinorDivisions() int    { return a.minorDivisions }
func (a *Axis) Legend() string         { return a.legend }

// Range returns the full data-space bounds of the axis.
func (a *Axis) Range() (lower, upper float64) {
	return a.lowerBound, a.upperBound
}

// DisplayRange returns the currently visible data-space bounds. With
// no adjustment attached this is the full range; otherwise it is the
// adjustment's window transformed back out of mode space.
func (a *Axis) DisplayRange() (lower, upper float64) {
	if a.adjust == nil {
		return a.lowerBound, a.upperBound
	}
	return a.modeInverse(a.lowerMode), a.modeInverse(a.upperMode)
}

// Project maps a data-space value onto [0, |norm|-1]. A negative norm
// mirrors the result, the convention for vertical axes where pixel row
// zero is at the top.
func (a *Axis) Project(value float64, norm int) float64 {
	return a.LinearProject(a.modeTransform(value), norm)
}

// LinearProject is Project for values already in mode space. Tick and
// grid placement iterate in mode space and project through this.
func (a *Axis) LinearProject(value float64, norm int) float64 {
	scale := math.Abs(float64(norm)) - 1
	t := (value - a.lowerMode) / (a.upperMode - a.lowerMode)
	if norm < 0 {
		return (1 - t) * scale
	}
	return t * scale
}

// majorTicks returns the mode-space positions of major ticks, from the
// first multiple of the major interval at or below the lower bound up
// to the upper bound rounded up.
func (a *Axis) majorTicks() []float64 {
	if a.majorInterval <= 0 {
		return nil
	}
	var out []float64
	end := math.Ceil(a.upperMode)
	for xy := math.Floor(a.lowerMode/a.majorInterval) * a.majorInterval; xy <= end; xy += a.majorInterval {
		out = append(out, xy)
	}
	return out
}

// minorTicks returns the mode-space minor tick positions following the
// given major tick, or nothing when minor divisions are disabled.
// Decade mode places them at the logarithms of 2 through 9; other
// modes space them evenly.
func (a *Axis) minorTicks(major float64) []float64 {
	if a.minorDivisions <= 0 {
		return nil
	}
	var out []float64
	if a.mode == AxisLogDecade {
		for i := 2; i <= 9; i++ {
			xy := major + math.Log10(float64(i))
			if xy > a.upperMode {
				break
			}
			out = append(out, xy)
		}
		return out
	}
	if a.minorInterval <= 0 {
		return nil
	}
	for i := 1; i < a.minorDivisions; i++ {
		xy := major + float64(i)*a.minorInterval
		if xy > a.upperMode {
			break
		}
		out = append(out, xy)
	}
	return out
}

// labelValue converts a mode-space tick position into the value shown
// on its label.
func (a *Axis) labelValue(xy float64) float64 {
	if a.mode == AxisLogDecade {
		return math.Pow(10, xy)
	}
	return xy
}

// Size returns the pixel thickness the axis needs to draw its ticks,
// labels, and legend.
func (a *Axis) Size(gtx C) int {
	px := gtx.Sp(a.labelSize)
	if a.tickSize > 0 {
		px += gtx.Dp(a.tickSize) + gtx.Dp(axisGap)
	}
	if a.legend != "" {
		px += gtx.Sp(a.legendSize) + gtx.Dp(axisGap)
	}
	return px
}

// DrawGrid emits the axis's grid lines across a plot area of the given
// size. A horizontal axis draws vertical lines and vice versa.
func (a *Axis) DrawGrid(gtx C, th *material.Theme, axis layout.Axis, size image.Point) {
	width := float32(gtx.Dp(1))
	for _, major := range a.majorTicks() {
		a.gridLine(gtx, axis, size, major, a.majorGridStyle, width, th.Fg)
		for _, minor := range a.minorTicks(major) {
			a.gridLine(gtx, axis, size, minor, a.minorGridStyle, width*0.5, th.Fg)
		}
	}
}

func (a *Axis) gridLine(gtx C, axis layout.Axis, size image.Point, xy float64, style LineStyle, width float32, col color.NRGBA) {
	var from, to f32.Point
	if axis == layout.Horizontal {
		x := float32(a.LinearProject(xy, size.X))
		from, to = f32.Pt(x, 0), f32.Pt(x, float32(size.Y))
	} else {
		y := float32(a.LinearProject(xy, -size.Y))
		from, to = f32.Pt(0, y), f32.Pt(float32(size.X), y)
	}
	strokeSegments(gtx, []stroke.Segment{stroke.MoveTo(from), stroke.LineTo(to)}, width, style, col)
}

// DrawAxis renders the axis baseline, ticks, labels, and legend into a
// band of the given size. pack selects which side of the plot the band
// sits on and therefore which edge the baseline hugs.
func (a *Axis) DrawAxis(gtx C, th *material.Theme, axis layout.Axis, pack PackType, size image.Point) {
	lineWidth := float32(gtx.Dp(1))
	tick := float32(0)
	if a.tickSize > 0 {
		tick = float32(gtx.Dp(a.tickSize))
	}
	gap := float32(gtx.Dp(axisGap))

	// The baseline hugs the band edge facing the plot area, and ticks
	// grow away from it.
	var base, dir float32
	switch {
	case axis == layout.Horizontal && pack == PackStart:
		base, dir = 0, 1
	case axis == layout.Horizontal && pack == PackEnd:
		base, dir = float32(size.Y), -1
	case axis == layout.Vertical && pack == PackStart:
		base, dir = float32(size.X), -1
	default:
		base, dir = 0, 1
	}

	norm := size.X
	if axis == layout.Vertical {
		norm = -size.Y
	}

	if axis == layout.Horizontal {
		strokeSegments(gtx, []stroke.Segment{
			stroke.MoveTo(f32.Pt(0, base)),
			stroke.LineTo(f32.Pt(float32(size.X), base)),
		}, lineWidth, LineStyleSolid, th.Fg)
	} else {
		strokeSegments(gtx, []stroke.Segment{
			stroke.MoveTo(f32.Pt(base, 0)),
			stroke.LineTo(f32.Pt(base, float32(size.Y))),
		}, lineWidth, LineStyleSolid, th.Fg)
	}

	labelOffset := float32(0)
	if tick > 0 {
		labelOffset = tick + gap
	}
	for _, major := range a.majorTicks() {
		if tick > 0 {
			a.tickMark(gtx, axis, norm, major, base, dir*tick, lineWidth, th.Fg)
			for _, minor := range a.minorTicks(major) {
				a.tickMark(gtx, axis, norm, minor, base, dir*tick*0.6, lineWidth*0.5, th.Fg)
			}
		}
		if major > a.upperMode {
			continue
		}
		a.tickLabel(gtx, th, axis, norm, major, base+dir*labelOffset, dir)
	}
	a.drawLegend(gtx, th, axis, pack, size)
}

func (a *Axis) tickMark(gtx C, axis layout.Axis, norm int, xy float64, base, extent, width float32, col color.NRGBA) {
	pos := float32(a.LinearProject(xy, norm))
	var from, to f32.Point
	if axis == layout.Horizontal {
		from, to = f32.Pt(pos, base), f32.Pt(pos, base+extent)
	} else {
		from, to = f32.Pt(base, pos), f32.Pt(base+extent, pos)
	}
	strokeSegments(gtx, []stroke.Segment{stroke.MoveTo(from), stroke.LineTo(to)}, width, LineStyleSolid, col)
}

func (a *Axis) tickLabel(gtx C, th *material.Theme, axis layout.Axis, norm int, xy float64, edge, dir float32) {
	txt := fmt.Sprintf("%g", a.labelValue(xy))
	dims, call := recordLabel(gtx, th, a.labelSize, txt)
	pos := float32(a.LinearProject(xy, norm))
	var at image.Point
	if axis == layout.Horizontal {
		at.X = int(pos) - dims.Size.X/2
		if dir > 0 {
			at.Y = int(edge)
		} else {
			at.Y = int(edge) - dims.Size.Y
		}
	} else {
		at.Y = int(pos) - dims.Size.Y/2
		if dir > 0 {
			at.X = int(edge)
		} else {
			at.X = int(edge) - dims.Size.X
		}
	}
	trans := op.Offset(at).Push(gtx.Ops)
	call.Add(gtx.Ops)
	trans.Pop()
}

func (a *Axis) drawLegend(gtx C, th *material.Theme, axis layout.Axis, pack PackType, size image.Point) {
	if a.legend == "" {
		return
	}
	dims, call := recordLabel(gtx, th, a.legendSize, a.legend)
	if axis == layout.Horizontal {
		at := image.Pt((size.X-dims.Size.X)/2, 0)
		if pack == PackStart {
			at.Y = size.Y - dims.Size.Y
		}
		trans := op.Offset(at).Push(gtx.Ops)
		call.Add(gtx.Ops)
		trans.Pop()
		return
	}
	// Vertical legends rotate a quarter turn about their center, then
	// shift so the rotated text hugs the band's outer edge.
	center := f32.Pt(float32(dims.Size.X)/2, float32(dims.Size.Y)/2)
	target := f32.Pt(float32(dims.Size.Y)/2, float32(size.Y)/2)
	if pack == PackEnd {
		target.X = float32(size.X) - float32(dims.Size.Y)/2
	}
	trans := op.Affine(f32.Affine2D{}.Rotate(center, -math.Pi/2).Offset(target.Sub(center))).Push(gtx.Ops)
	call.Add(gtx.Ops)
	trans.Pop()
}
