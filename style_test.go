package gioplot

import "testing"

func TestLineStyleDashes(t *testing.T) {
	for _, tc := range []struct {
		style LineStyle
		want  []float32
	}{
		{LineStyleSolid, nil},
		{LineStyleDots, []float32{1}},
		{LineStyleDash, []float32{2, 3}},
		{LineStyleLongDash, []float32{4, 3}},
		{LineStyleDotDash, []float32{1, 1, 1, 1, 4}},
		{LineStyleLongShortDash, []float32{4, 3, 2, 3}},
		{LineStyleDotDotDash, []float32{1, 3, 1, 3, 4}},
	} {
		t.Run(tc.style.String(), func(t *testing.T) {
			got := tc.style.Dashes()
			if len(got) != len(tc.want) {
				t.Fatalf("dashes %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("dash %d: %g, want %g", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseLineStyle(t *testing.T) {
	style, err := ParseLineStyle("dot-dash")
	if err != nil || style != LineStyleDotDash {
		t.Errorf("got (%v, %v), want (dot-dash, nil)", style, err)
	}
	if _, err := ParseLineStyle("wavy"); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestParseAxisMode(t *testing.T) {
	mode, err := ParseAxisMode("decades")
	if err != nil || mode != AxisLogDecade {
		t.Errorf("got (%v, %v), want (decades, nil)", mode, err)
	}
	if _, err := ParseAxisMode("radians"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
