package gioplot

import "fmt"

// LineStyle selects the dash pattern used to stroke plot lines and grid
// lines. Dash lengths are expressed in multiples of the line width.
type LineStyle uint8

const (
	LineStyleSolid LineStyle = iota
	LineStyleDots
	LineStyleDash
	LineStyleLongDash
	LineStyleDotDash
	LineStyleLongShortDash
	LineStyleDotDotDash
)

var lineStyleNames = [...]string{
	LineStyleSolid:         "solid",
	LineStyleDots:          "dots",
	LineStyleDash:          "dash",
	LineStyleLongDash:      "long-dash",
	LineStyleDotDash:       "dot-dash",
	LineStyleLongShortDash: "long-short-dash",
	LineStyleDotDotDash:    "dot-dot-dash",
}

func (l LineStyle) String() string {
	if int(l) >= len(lineStyleNames) {
		return fmt.Sprintf("LineStyle(%d)", uint8(l))
	}
	return lineStyleNames[l]
}

// ParseLineStyle converts the string form of a line style back into its
// enumerated value, for use by declarative configuration loaders.
func ParseLineStyle(s string) (LineStyle, error) {
	for i, name := range lineStyleNames {
		if s == name {
			return LineStyle(i), nil
		}
	}
	return LineStyleSolid, fmt.Errorf("unknown line style %q", s)
}

var (
	dashesDots          = []float32{1}
	dashesDash          = []float32{2, 3}
	dashesLongDash      = []float32{4, 3}
	dashesDotDash       = []float32{1, 1, 1, 1, 4}
	dashesLongShortDash = []float32{4, 3, 2, 3}
	dashesDotDotDash    = []float32{1, 3, 1, 3, 4}
)

// Dashes returns the dash pattern for the style in units of the line
// width, or nil for a solid line.
func (l LineStyle) Dashes() []float32 {
	switch l {
	case LineStyleDots:
		return dashesDots
	case LineStyleDash:
		return dashesDash
	case LineStyleLongDash:
		return dashesLongDash
	case LineStyleDotDash:
		return dashesDotDash
	case LineStyleLongShortDash:
		return dashesLongShortDash
	case LineStyleDotDotDash:
		return dashesDotDotDash
	default:
		return nil
	}
}

// AxisMode controls how an axis interprets data values before projecting
// them onto the drawing surface.
type AxisMode uint8

const (
	// AxisLinear projects values unchanged.
	AxisLinear AxisMode = iota
	// AxisLogOctave projects the base-2 logarithm of values.
	AxisLogOctave
	// AxisLogDecade projects the base-10 logarithm of values.
	AxisLogDecade
)

var axisModeNames = [...]string{
	AxisLinear:    "linear",
	AxisLogOctave: "octaves",
	AxisLogDecade: "decades",
}

func (m AxisMode) String() string {
	if int(m) >= len(axisModeNames) {
		return fmt.Sprintf("AxisMode(%d)", uint8(m))
	}
	return axisModeNames[m]
}

// ParseAxisMode converts the string form of an axis mode back into its
// enumerated value.
func ParseAxisMode(s string) (AxisMode, error) {
	for i, name := range axisModeNames {
		if s == name {
			return AxisMode(i), nil
		}
	}
	return AxisLinear, fmt.Errorf("unknown axis mode %q", s)
}

// PackType selects which edge of the plot's central area a component is
// packed against, in the sense of its own orientation: a horizontal axis
// packed at the start sits below the plot, a vertical axis packed at the
// start sits to its left.
type PackType uint8

const (
	PackStart PackType = iota
	PackEnd
)
