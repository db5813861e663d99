package gioplot

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

func testContext(w, h int) C {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(w, h)),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
	}
}

func testCurve() *CurveDataset {
	c := NewCurveDataset("curve")
	c.SetAxes(NewAxis(AxisLinear, 0, 3), NewAxis(AxisLinear, 0, 1))
	c.SetPoints([]Point{{0, 0}, {1, 1}, {2, 0}, {3, 1}})
	return c
}

func TestCurveCacheReuse(t *testing.T) {
	c := testCurve()
	c.ensureCache(100)
	if len(c.cache) != 100/4+1 {
		t.Fatalf("cache has %d samples, want %d", len(c.cache), 100/4+1)
	}
	first := &c.cache[0]
	c.ensureCache(100)
	if &c.cache[0] != first {
		t.Error("same-width draw rebuilt the cache")
	}
	c.ensureCache(200)
	if &c.cache[0] == first {
		t.Error("different width reused the cache")
	}
	if len(c.cache) != 200/4+1 {
		t.Errorf("cache has %d samples, want %d", len(c.cache), 200/4+1)
	}
}

func TestCurveInvalidation(t *testing.T) {
	c := testCurve()
	c.ensureCache(100)
	c.SetPoints([]Point{{0, 1}, {1, 0}})
	if c.cache != nil {
		t.Error("SetPoints kept the cache")
	}
	c.ensureCache(100)
	c.Invalidate()
	if c.cache != nil {
		t.Error("Invalidate kept the cache")
	}
}

func TestCurveDrawWithoutAxes(t *testing.T) {
	c := NewCurveDataset("bare")
	c.SetPoints([]Point{{0, 0}, {1, 1}, {2, 0}})
	gtx := testContext(100, 100)
	c.Draw(gtx, image.Pt(100, 100))
	if c.cache != nil {
		t.Error("draw without axes built a cache")
	}
}

func TestCurveMarkerDefaults(t *testing.T) {
	c := NewCurveDataset("markers")
	want := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if c.markerStroke != want {
		t.Errorf("marker stroke %v, want white", c.markerStroke)
	}
	if (c.markerFill != color.NRGBA{}) {
		t.Errorf("marker fill %v, want transparent", c.markerFill)
	}
}

func TestCurveDrawTooFewPoints(t *testing.T) {
	c := NewCurveDataset("short")
	c.SetAxes(NewAxis(AxisLinear, 0, 1), NewAxis(AxisLinear, 0, 1))
	c.SetPoints([]Point{{0, 0}})
	gtx := testContext(100, 100)
	c.Draw(gtx, image.Pt(100, 100))
}
