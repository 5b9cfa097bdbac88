package textinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/datecombo/internal/ui/action"
	"github.com/llehouerou/datecombo/internal/ui/testutil"
)

type goToContext struct{ field string }

func newTestInput(initialText string, context any) (*Model, *testutil.Harness) {
	m := New()
	m.Start("Go to date", "YYYY-MM-DD", initialText, context, 80, 24)
	return &m, testutil.NewPopupHarness(&m)
}

func typeText(h *testutil.Harness, s string) {
	for _, r := range s {
		h.SendKey(string(r))
	}
}

func getResult(t *testing.T, h *testutil.Harness) Result {
	t.Helper()
	msg := testutil.ExecuteCmd(h.LastCommand())
	actionMsg, ok := msg.(action.Msg)
	require.True(t, ok, "expected action.Msg, got %T", msg)
	assert.Equal(t, "textinput", actionMsg.Source)
	result, ok := actionMsg.Action.(Result)
	require.True(t, ok, "expected Result, got %T", actionMsg.Action)
	return result
}

func TestTextInput_InitCommandBlinks(t *testing.T) {
	_, h := newTestInput("", nil)

	assert.Len(t, h.Commands(), 1)
}

func TestTextInput_EnterSubmitsTypedDate(t *testing.T) {
	ctx := goToContext{field: "value"}
	_, h := newTestInput("", ctx)

	typeText(h, "2026-10-17")
	h.SendEnter()

	result := getResult(t, h)
	assert.Equal(t, "2026-10-17", result.Text)
	assert.False(t, result.Canceled)
	assert.Equal(t, ctx, result.Context)
}

func TestTextInput_EditInitialText(t *testing.T) {
	m, h := newTestInput("2026-10-17", nil)
	require.Equal(t, "2026-10-17", m.Value())

	h.SendSpecialKey(tea.KeyBackspace)
	h.SendSpecialKey(tea.KeyBackspace)
	typeText(h, "31")
	h.SendEnter()

	assert.Equal(t, "2026-10-31", getResult(t, h).Text)
}

func TestTextInput_BackspaceOnEmpty(t *testing.T) {
	m, h := newTestInput("", nil)

	h.SendSpecialKey(tea.KeyBackspace)

	assert.Empty(t, m.Value())
}

func TestTextInput_EscapeCancels(t *testing.T) {
	_, h := newTestInput("2026-10-17", "ctx")

	typeText(h, "x")
	h.SendEscape()

	result := getResult(t, h)
	assert.True(t, result.Canceled)
	assert.Empty(t, result.Text)
	assert.Equal(t, "ctx", result.Context)
}

func TestTextInput_CharLimit(t *testing.T) {
	_, h := newTestInput("", nil)

	for range charLimit + 10 {
		h.SendKey("1")
	}
	h.SendEnter()

	assert.Len(t, getResult(t, h).Text, charLimit)
}

func TestTextInput_IgnoresTab(t *testing.T) {
	_, h := newTestInput("", nil)

	h.SendKey("2")
	h.SendTab()
	h.SendKey("6")
	h.SendEnter()

	assert.Equal(t, "26", getResult(t, h).Text)
}

func TestTextInput_View(t *testing.T) {
	_, h := newTestInput("2026-10", nil)

	assert.Empty(t, h.AssertViewContains("Go to date"))
	assert.Empty(t, h.AssertViewContains("> 2026-10"))
	assert.Empty(t, h.AssertViewContains("Enter: confirm, Esc: cancel"))
}

func TestTextInput_ViewShowsPlaceholder(t *testing.T) {
	_, h := newTestInput("", nil)

	// The cursor sits on the first placeholder rune.
	assert.Empty(t, h.AssertViewContains("YYY-MM-DD"))
}

func TestTextInput_EmptyViewWithoutSize(t *testing.T) {
	m := New()
	m.Start("Go to date", "", "", nil, 0, 0)

	assert.Empty(t, m.View())
}

func TestTextInput_Reset(t *testing.T) {
	m, h := newTestInput("2026-10-17", "ctx")

	m.Reset()

	assert.Empty(t, m.Value())
	assert.Empty(t, h.AssertViewNotContains("Go to date"))
}
