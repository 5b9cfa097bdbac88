package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/datecombo/internal/keymap"
)

// Dropdown geometry used throughout: a 7-row window over day lists of
// 28 to 31 entries and a 12-entry month list.
const height = 7

func TestNew(t *testing.T) {
	c := New(2)

	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Offset())
	assert.Equal(t, 2, c.Margin())
}

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		start      int
		delta      int
		listLen    int
		wantPos    int
		wantOffset int
	}{
		{"down within window", 0, 0, 3, 31, 3, 0},
		{"down past window", 0, 0, 10, 31, 10, 4},
		{"clamped at end", 0, 0, 100, 12, 11, 5},
		{"clamped at start", 0, 5, -100, 31, 0, 0},
		{"margin scrolls early", 2, 0, 5, 31, 5, 1},
		{"margin capped by window", 10, 0, 4, 31, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.Jump(tt.start, tt.listLen, height)
			c.Move(tt.delta, tt.listLen, height)

			assert.Equal(t, tt.wantPos, c.Pos(), "pos")
			assert.Equal(t, tt.wantOffset, c.Offset(), "offset")
		})
	}
}

func TestMove_EmptyList(t *testing.T) {
	c := New(0)
	c.Move(3, 0, height)

	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Offset())
}

func TestJump(t *testing.T) {
	c := New(0)

	c.Jump(40, 31, height)
	assert.Equal(t, 30, c.Pos())
	assert.Equal(t, 24, c.Offset())

	c.JumpStart()
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Offset())

	c.JumpEnd(12, height)
	assert.Equal(t, 11, c.Pos())
	assert.Equal(t, 5, c.Offset())
}

func TestJump_ListShrinks(t *testing.T) {
	// Day 31 highlighted, then the month changes to February.
	c := New(0)
	c.Jump(30, 31, height)

	c.Jump(30, 28, height)

	assert.Equal(t, 27, c.Pos())
	assert.Equal(t, 21, c.Offset())
	start, end := c.VisibleRange(28, height)
	assert.Equal(t, [2]int{21, 28}, [2]int{start, end})
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name       string
		pos        int
		listLen    int
		wantPos    int
		wantOffset int
	}{
		{"near start", 2, 31, 2, 0},
		{"middle", 15, 31, 15, 12},
		{"near end", 9, 12, 9, 5},
		{"past end", 50, 12, 11, 5},
		{"short list", 1, 3, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0)
			c.Center(tt.pos, tt.listLen, height)

			assert.Equal(t, tt.wantPos, c.Pos(), "pos")
			assert.Equal(t, tt.wantOffset, c.Offset(), "offset")
		})
	}
}

func TestCenter_EmptyListResets(t *testing.T) {
	c := New(0)
	c.Jump(10, 31, height)

	c.Center(5, 0, height)

	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Offset())
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	c.Center(15, 31, height)

	start, end := c.VisibleRange(31, height)
	assert.Equal(t, 12, start)
	assert.Equal(t, 19, end)

	start, end = c.VisibleRange(0, height)
	assert.Zero(t, start)
	assert.Zero(t, end)

	start, end = c.VisibleRange(31, 0)
	assert.Zero(t, start)
	assert.Zero(t, end)

	short := New(0)
	start, end = short.VisibleRange(3, height)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestReset(t *testing.T) {
	c := New(1)
	c.Jump(20, 31, height)

	c.Reset()

	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Offset())
	assert.Equal(t, 1, c.Margin())
}

func TestHandleAction(t *testing.T) {
	tests := []struct {
		action  keymap.Action
		handled bool
		wantPos int
	}{
		{keymap.ActionNext, true, 6},
		{keymap.ActionPrev, true, 4},
		{keymap.ActionFirst, true, 0},
		{keymap.ActionLast, true, 11},
		{keymap.ActionOpen, false, 5},
		{keymap.ActionToday, false, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			c := New(0)
			c.Jump(5, 12, height)

			got := c.HandleAction(tt.action, 12, height)

			assert.Equal(t, tt.handled, got)
			assert.Equal(t, tt.wantPos, c.Pos())
		})
	}
}
