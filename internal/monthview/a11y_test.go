package monthview_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-monthgrid/internal/monthview"
)

func TestVirtualViewAt(t *testing.T) {
	v := newLaidOutView(t, newFakeStyle())

	assert.Equal(t, 5, v.VirtualViewAt(viewCenter(t, v, 5)))
	assert.Equal(t, monthview.InvalidID, v.VirtualViewAt(image.Pt(100, 20)))
	assert.Equal(t, monthview.InvalidID, v.VirtualViewAt(image.Pt(-10, 150)))

	stale := monthview.New(newFakeStyle(), feb2024(t))
	assert.Equal(t, monthview.InvalidID, stale.VirtualViewAt(image.Pt(100, 150)))
}

func TestVisibleVirtualViews(t *testing.T) {
	v := newLaidOutView(t, newFakeStyle())

	ids := v.VisibleVirtualViews()
	require.Len(t, ids, 29)
	assert.Equal(t, 1, ids[0])
	assert.Equal(t, 29, ids[28])
}

func TestNode(t *testing.T) {
	v := newLaidOutView(t, newFakeStyle())
	spec := v.MonthSpec()

	tests := []struct {
		name          string
		id            int
		wantText      string
		wantDesc      string
		wantEnabled   bool
		wantChecked   bool
		wantClickable bool
	}{
		{"Enabled day", 5, "5", "05 February 2024", true, false, true},
		{"Selected day", 14, "14", "14 February 2024", true, true, true},
		{"Disabled day", 25, "25", "25 February 2024", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := v.Node(tt.id)
			bounds, ok := v.Metrics().BoundsOf(tt.id, spec)
			require.True(t, ok)

			assert.Equal(t, tt.id, node.ID)
			assert.Equal(t, tt.wantText, node.Text)
			assert.Equal(t, tt.wantDesc, node.Description)
			assert.Equal(t, bounds, node.Bounds)
			assert.Equal(t, tt.wantEnabled, node.Enabled)
			assert.Equal(t, tt.wantChecked, node.Checked)
			assert.Equal(t, tt.wantClickable, node.Clickable)
			assert.True(t, node.Visible)
			assert.True(t, viewCenter(t, v, tt.id).In(node.Bounds))
		})
	}
}

func TestNode_InvalidIDIsEmpty(t *testing.T) {
	v := newLaidOutView(t, newFakeStyle())

	for _, id := range []int{monthview.InvalidID, 0, 30, 42} {
		node := v.Node(id)
		assert.False(t, node.Visible, "id %d", id)
		assert.Empty(t, node.Text)
		assert.Empty(t, node.Description)
		assert.True(t, node.Bounds.Empty())
	}
}

func TestNode_BoundsFollowMirroring(t *testing.T) {
	v := newLaidOutView(t, newFakeStyle())
	ltr := v.Node(4).Bounds

	v.Layout(v.Metrics().Size, testInsets, true)
	rtl := v.Node(4).Bounds

	assert.Equal(t, image.Rect(8, 108, 48, 148), ltr)
	assert.Equal(t, image.Rect(248, 108, 288, 148), rtl)
}

func TestPerformAction(t *testing.T) {
	v := newLaidOutView(t, newFakeStyle())
	rec := record(v)

	assert.True(t, v.PerformAction(5, monthview.ActionClick))
	assert.False(t, v.PerformAction(25, monthview.ActionClick), "disabled days cannot be selected")
	assert.False(t, v.PerformAction(0, monthview.ActionClick))
	assert.False(t, v.PerformAction(5, monthview.Action(99)))

	require.Len(t, rec.clicks, 1)
	assert.Equal(t, 5, rec.clicks[0].Day)

	require.Len(t, rec.events, 1)
	assert.Equal(t, monthview.Event{
		Type:        monthview.EventViewClicked,
		Node:        5,
		Description: "05 February 2024",
	}, rec.events[0])
}
