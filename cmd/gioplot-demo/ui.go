package main

import (
	"image/color"
	"log"
	"math"
	"os"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"gioui.org/x/explorer"
	"git.sr.ht/~cdouglass/gioplot"
	"git.sr.ht/~gioverse/skel/stream"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var defaultPoints = []gioplot.Point{
	{X: 0, Y: 2}, {X: 1, Y: 4}, {X: 2, Y: 1.5}, {X: 3, Y: 5},
	{X: 4, Y: 3}, {X: 5, Y: 6}, {X: 6, Y: 2.5}, {X: 7, Y: 5.5},
	{X: 8, Y: 4}, {X: 9, Y: 7}, {X: 10, Y: 6},
}

// UI holds the state of and draws the top-level demo UI.
type UI struct {
	th         *material.Theme
	controller *stream.Controller
	expl       *explorer.Explorer

	plot     *gioplot.Plot
	xAxis    *gioplot.Axis
	yAxis    *gioplot.Axis
	adjust   *gioplot.Adjustment
	bar      gioplot.AdjustmentBar
	curve    *gioplot.CurveDataset
	wave     *gioplot.LineDataset
	datasets []gioplot.Dataset

	pointsStream *stream.Stream[[]gioplot.Point]

	openBtn  widget.Clickable
	openIcon *widget.Icon
	markers  widget.Bool
	solos    map[string]*widget.Bool
	table    component.GridState
}

func newUI(controller *stream.Controller, expl *explorer.Explorer, dataPath string) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	openIcon, _ := widget.NewIcon(icons.FileFolderOpen)
	ui := &UI{
		th:         th,
		controller: controller,
		expl:       expl,
		openIcon:   openIcon,
		markers:    widget.Bool{Value: true},
		solos:      make(map[string]*widget.Bool),
	}

	ui.xAxis = gioplot.NewAxis(gioplot.AxisLinear, 0, 10)
	ui.xAxis.SetLegend("time (s)")
	ui.xAxis.SetMajorInterval(2)
	ui.yAxis = gioplot.NewAxis(gioplot.AxisLinear, 0, 8)
	ui.yAxis.SetLegend("amplitude")
	ui.yAxis.SetMajorInterval(1)
	ui.yAxis.SetMinorDivisions(2)

	ui.adjust = new(gioplot.Adjustment)
	ui.xAxis.SetAdjustment(ui.adjust)
	// Narrow the visible window so the scrollbar has somewhere to go.
	ui.adjust.Configure(0, 0, 10, 0.5, 2, 4)
	ui.bar.Adjustment = ui.adjust

	ui.curve = gioplot.NewCurveDataset("spline")
	ui.curve.SetLegend("Interpolated curve")
	ui.curve.SetAxes(ui.xAxis, ui.yAxis)
	ui.curve.SetLineStroke(color.NRGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff})
	ui.curve.SetMarkerStroke(color.NRGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff})
	ui.curve.SetMarkerFill(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	ui.curve.SetShowMarkers(true)
	ui.curve.SetPoints(defaultPoints)

	ui.wave = gioplot.NewLineDataset("wave")
	ui.wave.SetLegend("Reference wave")
	ui.wave.SetAxes(ui.xAxis, ui.yAxis)
	ui.wave.SetLineStroke(color.NRGBA{R: 0xe0, G: 0x66, B: 0x66, A: 0xff})
	ui.wave.SetLineStyle(gioplot.LineStyleLongDash)
	ui.wave.SetPoints(wavePoints())

	ui.plot = gioplot.NewPlot()
	ui.plot.SetTitle("Signal preview")
	ui.plot.SetFill(color.NRGBA{R: 0xfc, G: 0xfc, B: 0xfc, A: 0xff})
	ui.plot.AddDataset(ui.curve)
	ui.plot.AddDataset(ui.wave)
	ui.datasets = []gioplot.Dataset{ui.curve, ui.wave}
	for _, ds := range ui.datasets {
		ui.solos[ds.Nickname()] = new(widget.Bool)
	}

	if dataPath != "" {
		ui.pointsStream = stream.New(controller, watchPoints(dataPath))
	}
	return ui
}

func wavePoints() []gioplot.Point {
	points := make([]gioplot.Point, 0, 41)
	for x := 0.0; x <= 10; x += 0.25 {
		points = append(points, gioplot.Point{X: x, Y: 4 + 3*math.Sin(x)})
	}
	return points
}

// Update processes widget events and folds freshly streamed control
// points into the curve dataset.
func (ui *UI) Update(gtx C) {
	if ui.pointsStream != nil {
		if points, isNew := ui.pointsStream.ReadNew(gtx); isNew && len(points) >= 2 {
			ui.curve.SetPoints(points)
		}
	}
	if ui.openBtn.Clicked(gtx) {
		f, err := ui.expl.ChooseFile(".csv")
		if err != nil {
			log.Printf("failed browsing for file: %v", err)
		} else if osFile, ok := f.(*os.File); !ok {
			log.Printf("selected file of unexpected type: %T", f)
		} else {
			path := osFile.Name()
			osFile.Close()
			ui.pointsStream = stream.New(ui.controller, watchPoints(path))
		}
	}
	if ui.markers.Update(gtx) {
		ui.curve.SetShowMarkers(ui.markers.Value)
	}
	for _, ds := range ui.datasets {
		if b := ui.solos[ds.Nickname()]; b.Update(gtx) {
			ui.plot.SetSolo(ds, b.Value)
		}
	}
}

func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	paint.Fill(gtx.Ops, ui.th.Bg)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(ui.layoutToolbar),
		layout.Flexed(1, func(gtx C) D {
			return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
				return ui.plot.Layout(gtx, ui.th)
			})
		}),
		layout.Rigid(func(gtx C) D {
			return ui.bar.Layout(gtx, ui.th, layout.Horizontal)
		}),
		layout.Rigid(ui.layoutDatasetTable),
	)
}

func (ui *UI) layoutToolbar(gtx C) D {
	return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				btn := material.IconButton(ui.th, &ui.openBtn, ui.openIcon, "open a CSV of control points")
				btn.Size = unit.Dp(20)
				return btn.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(material.CheckBox(ui.th, &ui.markers, "Markers").Layout),
			layout.Flexed(1, func(gtx C) D {
				return D{Size: gtx.Constraints.Min}
			}),
			layout.Rigid(func(gtx C) D {
				return gioplot.Legend{Plot: ui.plot, SampleLength: 32}.Layout(gtx, ui.th)
			}),
		)
	})
}

func (ui *UI) layoutDatasetTable(gtx C) D {
	th := ui.th
	table := component.Table(th, &ui.table)
	table.HScrollbarStyle.Indicator.MinorWidth = 0
	table.HScrollbarStyle.Track.MinorPadding = 0
	table.VScrollbarStyle.Indicator.MinorWidth = 0
	table.VScrollbarStyle.Track.MinorPadding = 0
	sampleColWidth := gtx.Dp(60)
	soloColWidth := gtx.Dp(80)
	nameColWidth := gtx.Constraints.Max.X - sampleColWidth - soloColWidth - gtx.Dp(table.VScrollbarStyle.Width())
	rowHeight := gtx.Sp(28)
	const (
		sampleCol = iota
		nameCol
		soloCol
		numCols
	)
	return table.Layout(gtx, len(ui.datasets), numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			var size int
			switch index {
			case sampleCol:
				size = sampleColWidth
			case nameCol:
				size = nameColWidth
			case soloCol:
				size = soloColWidth
			}
			return min(size, constraint)
		},
		func(gtx C, index int) D {
			var l material.LabelStyle
			switch index {
			case sampleCol:
				l = material.Body1(th, "Line")
			case nameCol:
				l = material.Body1(th, "Dataset")
			case soloCol:
				l = material.Body1(th, "Solo")
			default:
				l = material.Body1(th, "???")
			}
			l.Color = th.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					paint.FillShape(gtx.Ops, th.ContrastBg, clip.Rect{Max: gtx.Constraints.Max}.Op())
					return D{Size: gtx.Constraints.Min}
				},
				l.Layout,
			)
		},
		func(gtx C, row, col int) (dims D) {
			defer func() {
				dims.Size = gtx.Constraints.Constrain(dims.Size)
			}()
			ds := ui.datasets[row]
			dims = layout.UniformInset(2).Layout(gtx, func(gtx C) D {
				switch col {
				case sampleCol:
					return layout.Center.Layout(gtx, func(gtx C) D {
						return gioplot.Sample{Dataset: ds, Length: 32}.Layout(gtx)
					})
				case nameCol:
					return material.Body2(th, ds.Legend()).Layout(gtx)
				case soloCol:
					return layout.Center.Layout(gtx, material.Switch(th, ui.solos[ds.Nickname()], "solo this dataset").Layout)
				default:
					return D{}
				}
			})
			return dims
		},
	)
}
