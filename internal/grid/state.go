package grid

// DayState is the visual state of one day cell.
type DayState int

const (
	// StateNormal is reported for cells that hold no day of the month.
	StateNormal DayState = iota
	StateEnabled
	StateDisabled
	StatePressed
	StateSelected
)

func (s DayState) String() string {
	switch s {
	case StateEnabled:
		return "enabled"
	case StateDisabled:
		return "disabled"
	case StatePressed:
		return "pressed"
	case StateSelected:
		return "selected"
	default:
		return "normal"
	}
}

// PointerState is the only frame-to-frame mutable state of a month grid:
// the day currently under an active pointer, or NoDay.
type PointerState struct {
	TouchedDay int
}

// Touching reports whether a day is currently pressed.
func (p PointerState) Touching() bool {
	return p.TouchedDay != NoDay
}

// Classify returns the state of day. Selection wins over a simultaneous press,
// which wins over the enabled range.
func Classify(day int, spec MonthSpec, pointer PointerState) DayState {
	switch {
	case !spec.IsValidDay(day):
		return StateNormal
	case day == spec.SelectedDay():
		return StateSelected
	case day == pointer.TouchedDay:
		return StatePressed
	case spec.IsEnabled(day):
		return StateEnabled
	default:
		return StateDisabled
	}
}
