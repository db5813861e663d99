package gioplot

import (
	"image"
	"testing"
)

func TestLineDatasetDrawWithoutAxes(t *testing.T) {
	d := NewLineDataset("bare")
	d.SetPoints([]Point{{0, 0}, {1, 1}})
	gtx := testContext(100, 100)
	d.Draw(gtx, image.Pt(100, 100))
	d.SetXAxis(NewAxis(AxisLinear, 0, 1))
	// Still missing the Y axis; drawing stays a no-op.
	d.Draw(gtx, image.Pt(100, 100))
}

func TestLineDatasetUpdateNotification(t *testing.T) {
	d := NewLineDataset("series")
	var fired int
	cancel := d.OnUpdate(func() { fired++ })
	d.SetPoints([]Point{{0, 0}})
	d.AddPoint(Point{1, 1})
	d.SetLineStyle(LineStyleDots)
	if fired != 3 {
		t.Fatalf("expected 3 notifications, got %d", fired)
	}
	cancel()
	d.SetLegend("Series A")
	if fired != 3 {
		t.Error("notification fired after cancel")
	}
}
