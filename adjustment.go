package gioplot

// Adjustment models a scrollable range with a movable page, in the
// manner of a scrollbar model. An axis attached to an adjustment keeps
// its display bounds synchronized with the adjustment's value and page
// size, so several axes sharing one adjustment scroll together.
type Adjustment struct {
	value         float64
	lower         float64
	upper         float64
	stepIncrement float64
	pageIncrement float64
	pageSize      float64

	valueChanged updateList
	changed      updateList
}

// Configure sets every field of the adjustment at once, clamps the
// value into range, and fires both change notifications.
func (a *Adjustment) Configure(value, lower, upper, stepIncrement, pageIncrement, pageSize float64) {
	a.lower = lower
	a.upper = upper
	a.stepIncrement = stepIncrement
	a.pageIncrement = pageIncrement
	a.pageSize = pageSize
	a.value = a.clamp(value)
	a.changed.notify()
	a.valueChanged.notify()
}

func (a *Adjustment) clamp(value float64) float64 {
	if max := a.upper - a.pageSize; value > max {
		value = max
	}
	if value < a.lower {
		value = a.lower
	}
	return value
}

// SetLower moves the lower limit of the range, leaving the value and
// page size alone.
func (a *Adjustment) SetLower(lower float64) {
	if lower == a.lower {
		return
	}
	a.lower = lower
	a.changed.notify()
}

// SetUpper moves the upper limit of the range, leaving the value and
// page size alone.
func (a *Adjustment) SetUpper(upper float64) {
	if upper == a.upper {
		return
	}
	a.upper = upper
	a.changed.notify()
}

// SetValue moves the page start to value, clamped so the page stays
// within [lower, upper].
func (a *Adjustment) SetValue(value float64) {
	value = a.clamp(value)
	if value == a.value {
		return
	}
	a.value = value
	a.valueChanged.notify()
}

func (a *Adjustment) Value() float64         { return a.value }
func (a *Adjustment) Lower() float64         { return a.lower }
func (a *Adjustment) Upper() float64         { return a.upper }
func (a *Adjustment) StepIncrement() float64 { return a.stepIncrement }
func (a *Adjustment) PageIncrement() float64 { return a.pageIncrement }
func (a *Adjustment) PageSize() float64      { return a.pageSize }

// StepBy moves the value by n step increments.
func (a *Adjustment) StepBy(n float64) {
	a.SetValue(a.value + n*a.stepIncrement)
}

// PageBy moves the value by n page increments.
func (a *Adjustment) PageBy(n float64) {
	a.SetValue(a.value + n*a.pageIncrement)
}

// OnValueChanged registers fn to run whenever the value moves. The
// returned func cancels the registration.
func (a *Adjustment) OnValueChanged(fn func()) func() {
	return a.valueChanged.add(fn)
}

// OnChanged registers fn to run whenever the range fields change. The
// returned func cancels the registration.
func (a *Adjustment) OnChanged(fn func()) func() {
	return a.changed.add(fn)
}
