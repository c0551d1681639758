package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/timer"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// countdownUI hosts the live countdown in a bubbletea program. The engine
// runs in its own goroutine; progress reaches the model over a channel
// and stop keys cancel the engine's context.
type countdownUI struct {
	engine *timer.Engine
}

func newCountdownUI(engine *timer.Engine) *countdownUI {
	return &countdownUI{engine: engine}
}

func (c *countdownUI) Run(ctx context.Context, minutes int, typ domain.SessionType) (domain.Outcome, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	progress := make(chan timer.Progress, 1)
	done := make(chan domain.Outcome, 1)

	go func() {
		out := c.engine.Run(runCtx, minutes, typ, func(p timer.Progress) {
			// Drop ticks the display hasn't consumed yet; the engine
			// must never block on rendering.
			select {
			case progress <- p:
			default:
			}
		})
		close(progress)
		done <- out
	}()

	m := newCountdownModel(typ, minutes, progress, done, cancel)
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		cancel()
		out := <-done
		if errors.Is(err, tea.ErrProgramKilled) {
			// Outer context cancelled: the run ends as Interrupted.
			return out, nil
		}
		return domain.Outcome{}, fmt.Errorf("running countdown display: %w", err)
	}

	fm := final.(countdownModel)
	if !fm.finished {
		cancel()
		fm.outcome = <-done
	}
	return fm.outcome, nil
}

type progressMsg timer.Progress

type outcomeMsg domain.Outcome

type countdownKeyMap struct {
	Stop key.Binding
}

var countdownKeys = countdownKeyMap{
	Stop: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "stop"),
	),
}

type countdownModel struct {
	typ      domain.SessionType
	minutes  int
	progress <-chan timer.Progress
	done     <-chan domain.Outcome
	cancel   context.CancelFunc

	current  timer.Progress
	outcome  domain.Outcome
	finished bool
	stopping bool
}

func newCountdownModel(typ domain.SessionType, minutes int, progress <-chan timer.Progress, done <-chan domain.Outcome, cancel context.CancelFunc) countdownModel {
	return countdownModel{
		typ:      typ,
		minutes:  minutes,
		progress: progress,
		done:     done,
		cancel:   cancel,
		current:  timer.Progress{Remaining: minutes * 60},
	}
}

func (m countdownModel) Init() tea.Cmd {
	return tea.Batch(m.waitProgress(), m.waitOutcome())
}

func (m countdownModel) waitProgress() tea.Cmd {
	return func() tea.Msg {
		p, ok := <-m.progress
		if !ok {
			return nil
		}
		return progressMsg(p)
	}
}

func (m countdownModel) waitOutcome() tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg(<-m.done)
	}
}

func (m countdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if key.Matches(msg, countdownKeys.Stop) {
			m.stopping = true
			m.cancel()
		}
		return m, nil

	case progressMsg:
		m.current = timer.Progress(msg)
		return m, m.waitProgress()

	case outcomeMsg:
		m.outcome = domain.Outcome(msg)
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

func (m countdownModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render(fmt.Sprintf("%s Session", m.typ.Label())))
	b.WriteString(formatter.Dim(fmt.Sprintf("  %s scheduled\n\n", formatter.FormatMinutes(m.minutes))))

	switch {
	case m.finished && m.outcome.Completed:
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			formatter.Bold(timer.FormatClock(0)),
			formatter.StyleGreen.Render("Complete!")))
	case m.finished:
		b.WriteString(fmt.Sprintf("  %s\n", formatter.StyleYellow.Render("Session stopped early")))
	default:
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			formatter.Bold(timer.FormatClock(m.current.Remaining)),
			formatter.RenderProgress(m.current.Fraction, formatter.CountdownBarWidth)))
		if m.stopping {
			b.WriteString(formatter.Dim("\n  stopping...\n"))
		} else {
			b.WriteString(formatter.Dim("\n  q to stop\n"))
		}
	}

	return b.String()
}
