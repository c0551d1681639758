package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (countdownModel, context.Context) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	progress := make(chan timer.Progress)
	done := make(chan domain.Outcome)
	return newCountdownModel(domain.SessionWork, 25, progress, done, cancel), ctx
}

func TestCountdownModel_InitialView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Work Session")
	assert.Contains(t, view, "25:00", "initial remaining is the full scheduled duration")
	assert.Contains(t, view, "q to stop")
}

func TestCountdownModel_ProgressUpdatesView(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(progressMsg(timer.Progress{Fraction: 0.5, Remaining: 750}))
	m = updated.(countdownModel)

	view := m.View()
	assert.Contains(t, view, "12:30")
	assert.Contains(t, view, " 50%")
}

func TestCountdownModel_OutcomeQuits(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(outcomeMsg(domain.Outcome{Type: domain.SessionWork, Duration: 25, Completed: true}))
	m = updated.(countdownModel)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd(), "a finished countdown quits the program")
	assert.True(t, m.finished)
	assert.Contains(t, m.View(), "Complete!")
}

func TestCountdownModel_StopKeyCancels(t *testing.T) {
	m, ctx := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(countdownModel)

	assert.Error(t, ctx.Err(), "the stop key must cancel the engine context")
	assert.Contains(t, m.View(), "stopping")

	updated, _ = m.Update(outcomeMsg(domain.Outcome{Type: domain.SessionWork, Duration: 25}))
	m = updated.(countdownModel)
	assert.Contains(t, m.View(), "stopped early")
}
