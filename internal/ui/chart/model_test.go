package chart

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/snptkdn/pomodoro/internal/core/model"
	"github.com/snptkdn/pomodoro/internal/ui/theme"
)

func newTestModel() Model {
	return New(theme.DefaultSettings(), zap.NewNop())
}

func advance(t *testing.T, m Model, ticks int) Model {
	t.Helper()
	for i := 0; i < ticks; i++ {
		updated, cmd := m.Update(tickMsg(time.Now()))
		require.NotNil(t, cmd, "every tick must schedule the next one")
		m = updated.(Model)
	}
	return m
}

func TestQuitKeyQuits(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestOtherKeysIgnored(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)

	start, end := updated.(Model).session.Clock()
	assert.Equal(t, 0.0, start)
	assert.Equal(t, float64(model.WindowSize), end)
}

func TestTickAdvancesSessionOnce(t *testing.T) {
	m := advance(t, newTestModel(), 1)

	start, end := m.session.Clock()
	assert.Equal(t, 1.0, start)
	assert.Equal(t, float64(model.WindowSize+1), end)
}

func TestSessionResetsAtCompletionThreshold(t *testing.T) {
	m := advance(t, newTestModel(), model.WindowSize-1)

	start, end := m.session.Clock()
	require.Equal(t, float64(model.WindowSize-1), start)
	require.Equal(t, float64(model.SessionTicks-1), end)

	m = advance(t, m, 1)
	start, end = m.session.Clock()
	assert.Equal(t, 0.0, start)
	assert.Equal(t, float64(model.WindowSize), end)
	assert.Equal(t, 1, m.resets)
}

func TestWindowSizeMsgResizes(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestViewIsPureFunctionOfState(t *testing.T) {
	m := advance(t, newTestModel(), 125)

	first := m.View()
	second := m.View()
	assert.Equal(t, first, second)

	start, end := m.session.Clock()
	assert.Equal(t, 125.0, start)
	assert.Equal(t, float64(model.WindowSize+125), end)
	assert.Contains(t, first, "Pomodoro")
	assert.Contains(t, first, "02:05")
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 3})

	assert.Contains(t, updated.(Model).View(), "terminal too small")
}

func TestHelpHiddenWhenDisabled(t *testing.T) {
	settings := theme.DefaultSettings()
	settings.ShowHelp = false
	m := New(settings, zap.NewNop())

	assert.NotContains(t, m.View(), "quit")
}
