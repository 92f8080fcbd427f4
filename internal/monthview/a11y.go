package monthview

import (
	"image"
	"log/slog"

	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/geometry"
)

// InvalidID is the virtual node id for "no node".
const InvalidID = -1

// Action is an accessibility action performed on a virtual node.
type Action int

const (
	ActionClick Action = iota + 1
)

func (a Action) String() string {
	if a == ActionClick {
		return "click"
	}
	return "unknown"
}

// EventType classifies accessibility events.
type EventType int

const (
	EventViewClicked EventType = iota + 1
)

// Event is raised on a virtual node.
type Event struct {
	Type        EventType
	Node        int
	Description string
}

// Node is the content of one virtual accessibility node. Node ids are day numbers.
type Node struct {
	ID          int
	Text        string
	Description string
	Bounds      image.Rectangle // view space
	Enabled     bool
	Checked     bool
	Clickable   bool
	Visible     bool
}

// VirtualViewAt resolves a view point to the id of the day under it, or InvalidID.
func (v *MonthView) VirtualViewAt(p image.Point) int {
	if !v.metrics.Ready() {
		return InvalidID
	}
	day := v.metrics.DayAtViewPoint(p, v.MonthSpec())
	if day == geometry.NoDay {
		return InvalidID
	}
	return day
}

// VisibleVirtualViews lists every day of the month, in order.
func (v *MonthView) VisibleVirtualViews() []int {
	n := v.MonthSpec().DaysInMonth()
	ids := make([]int, 0, n)
	for day := 1; day <= n; day++ {
		ids = append(ids, day)
	}
	return ids
}

// Node computes the node for id. Ids that are not a day of the month, or any id
// before the first layout pass, yield an empty invisible node.
func (v *MonthView) Node(id int) Node {
	spec := v.MonthSpec()
	if !v.metrics.Ready() {
		return Node{ID: id}
	}
	bounds, ok := v.metrics.BoundsOf(id, spec)
	if !ok {
		return Node{ID: id}
	}

	enabled := spec.IsEnabled(id)
	return Node{
		ID:          id,
		Text:        v.style.DayLabel(id),
		Description: v.style.DayDescription(spec.Date(id)),
		Bounds:      bounds,
		Enabled:     enabled,
		Checked:     id == spec.SelectedDay(),
		Clickable:   enabled,
		Visible:     true,
	}
}

// PerformAction runs action on node id and reports whether it was handled.
// A click selects the day through the same path as a pointer gesture.
func (v *MonthView) PerformAction(id int, action Action) bool {
	slog.Debug(config.MsgNodeActivated,
		config.LogKeyComponent, config.CompView,
		config.LogKeyNode, id,
		config.LogKeyAction, action.String(),
	)

	switch action {
	case ActionClick:
		return v.clickDay(id)
	default:
		return false
	}
}
