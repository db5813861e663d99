package gioplot

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Legend lists a plot's datasets as line samples with their legend
// text, in membership order, under the plot's title when one is set.
// Datasets with no legend text fall back to their nicknames.
type Legend struct {
	Plot         *Plot
	SampleLength unit.Dp
	TextSize     unit.Sp
	TitleSize    unit.Sp
}

func (l Legend) Layout(gtx C, th *material.Theme) D {
	textSize := l.TextSize
	if textSize == 0 {
		textSize = th.TextSize
	}
	var rows []layout.FlexChild
	if title := l.Plot.Title(); title != "" {
		titleSize := l.TitleSize
		if titleSize == 0 {
			titleSize = th.TextSize * 1.2
		}
		rows = append(rows, layout.Rigid(material.Label(th, titleSize, title).Layout))
	}
	l.Plot.datasets.each(func(ds Dataset, _ *plotDatasetData) bool {
		rows = append(rows, layout.Rigid(func(gtx C) D {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					return Sample{Dataset: ds, Length: l.SampleLength}.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
				layout.Rigid(material.Label(th, textSize, legendText(ds)).Layout),
			)
		}))
		return true
	})
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx, rows...)
}

func legendText(ds Dataset) string {
	if legend := ds.Legend(); legend != "" {
		return legend
	}
	return ds.Nickname()
}
