package gioplot

import (
	"image"
	"testing"

	"gioui.org/layout"
)

func testLine(nick string, x, y *Axis) *LineDataset {
	d := NewLineDataset(nick)
	d.SetAxes(x, y)
	d.SetPoints([]Point{{0, 0}, {1, 1}})
	return d
}

func TestPlotMembership(t *testing.T) {
	p := NewPlot()
	x := NewAxis(AxisLinear, 0, 10)
	y := NewAxis(AxisLinear, 0, 1)
	a := testLine("a", x, y)
	b := testLine("b", x, y)

	if existing := p.AddDataset(a); existing {
		t.Fatal("first add reported existing")
	}
	if p.axes.len() != 2 {
		t.Fatalf("axes after first dataset: %d, want 2", p.axes.len())
	}
	if gx, gy := p.CurrentAxes(); gx != x || gy != y {
		t.Error("first dataset's axes not adopted as current")
	}

	p.AddDataset(b)
	if p.axes.len() != 2 {
		t.Fatalf("shared axes duplicated: %d entries", p.axes.len())
	}

	if p.FindDataset("b") != Dataset(b) {
		t.Error("FindDataset failed to locate member")
	}
	if p.FindDataset("missing") != nil {
		t.Error("FindDataset found a non-member")
	}

	if removed := p.RemoveDataset(a); !removed {
		t.Fatal("removing dataset a did not report removal")
	}
	if p.axes.len() != 2 {
		t.Fatalf("shared axes detached early: %d entries", p.axes.len())
	}
	p.RemoveDataset(b)
	if p.axes.len() != 0 {
		t.Fatalf("axes remain after last dataset: %d", p.axes.len())
	}
	if gx, gy := p.CurrentAxes(); gx != nil || gy != nil {
		t.Error("current axes survive their removal")
	}
}

func TestPlotRepeatedAddKeepsAxisRefs(t *testing.T) {
	p := NewPlot()
	x := NewAxis(AxisLinear, 0, 10)
	y := NewAxis(AxisLinear, 0, 1)
	a := testLine("a", x, y)

	p.AddDataset(a)
	if existing := p.AddDataset(a); !existing {
		t.Fatal("second add did not report existing")
	}
	if removed := p.RemoveDataset(a); removed {
		t.Fatal("first remove detached a doubly-added dataset")
	}
	if p.axes.len() != 2 {
		t.Fatalf("axes detached with a dataset reference remaining: %d entries", p.axes.len())
	}
	if removed := p.RemoveDataset(a); !removed {
		t.Fatal("second remove did not detach")
	}
	if p.axes.len() != 0 {
		t.Fatalf("axes remain after final removal: %d entries", p.axes.len())
	}
}

func TestPlotSolo(t *testing.T) {
	p := NewPlot()
	x := NewAxis(AxisLinear, 0, 10)
	y := NewAxis(AxisLinear, 0, 1)
	a := testLine("a", x, y)
	b := testLine("b", x, y)
	p.AddDataset(a)
	p.AddDataset(b)

	p.SetSolo(a, true)
	if p.soloCount != 1 || !p.Solo(a) || p.Solo(b) {
		t.Fatalf("solo state wrong: count %d", p.soloCount)
	}
	p.SetSolo(a, true)
	if p.soloCount != 1 {
		t.Fatalf("repeated solo double-counted: %d", p.soloCount)
	}
	p.RemoveDataset(a)
	if p.soloCount != 0 {
		t.Fatalf("solo count survives removal: %d", p.soloCount)
	}
}

func TestPlotLayoutAxes(t *testing.T) {
	p := NewPlot()
	x := NewAxis(AxisLinear, 0, 10)
	y := NewAxis(AxisLinear, 0, 1)
	p.AddAxis(x, layout.Horizontal, PackStart)
	p.AddAxis(y, layout.Vertical, PackStart)

	gtx := testContext(200, 200)
	area := p.layoutAxes(gtx, image.Rect(0, 0, 200, 200))

	xSize := x.Size(gtx) + gtx.Dp(plotBorder)
	ySize := y.Size(gtx) + gtx.Dp(plotBorder)
	want := image.Rect(ySize, 0, 200, 200-xSize)
	if area != want {
		t.Fatalf("area %v, want %v", area, want)
	}

	xData, _ := p.axes.get(x)
	if xData.band.Min.Y != area.Max.Y+gtx.Dp(plotBorder) {
		t.Errorf("x band %v does not sit below the area %v", xData.band, area)
	}
	if xData.band.Min.X != area.Min.X || xData.band.Max.X != area.Max.X {
		t.Errorf("x band %v not stretched along area %v", xData.band, area)
	}
	yData, _ := p.axes.get(y)
	if yData.band.Max.X != area.Min.X-gtx.Dp(plotBorder) {
		t.Errorf("y band %v does not sit left of the area %v", yData.band, area)
	}

	in := image.Pt(xData.band.Min.X+1, xData.band.Min.Y+1)
	if got := p.AxisAt(in); got != x {
		t.Errorf("AxisAt(%v) = %v, want x axis", in, got)
	}
	if got := p.AxisAt(image.Pt(area.Min.X+1, area.Min.Y+1)); got != nil {
		t.Errorf("AxisAt inside plot area found %v", got)
	}
}

func TestPlotHiddenAxisOccupiesNoSpace(t *testing.T) {
	p := NewPlot()
	x := NewAxis(AxisLinear, 0, 10)
	p.AddAxis(x, layout.Horizontal, PackStart)
	p.HideAxis(x, true)

	gtx := testContext(200, 200)
	area := p.layoutAxes(gtx, image.Rect(0, 0, 200, 200))
	if area != image.Rect(0, 0, 200, 200) {
		t.Errorf("hidden axis reserved space: area %v", area)
	}
}

func TestPlotAddAxisRefCount(t *testing.T) {
	p := NewPlot()
	a := NewAxis(AxisLinear, 0, 1)
	if existing := p.AddAxis(a, layout.Horizontal, PackStart); existing {
		t.Fatal("first add reported existing")
	}
	if existing := p.AddAxis(a, layout.Horizontal, PackEnd); !existing {
		t.Fatal("second add did not report existing")
	}
	data, _ := p.axes.get(a)
	if data.pack != PackStart {
		t.Error("second add replaced placement")
	}
	if removed := p.RemoveAxis(a); removed {
		t.Fatal("first remove detached a doubly-referenced axis")
	}
	if removed := p.RemoveAxis(a); !removed {
		t.Fatal("second remove did not detach")
	}
}
