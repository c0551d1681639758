package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/timer"
	"github.com/charmbracelet/huh"
)

// plainCountdown renders a countdown as carriage-return refreshed lines,
// used when stdout is not a terminal capable of hosting the TUI. The run
// is interrupted by cancelling ctx (e.g. SIGINT via the main context).
type plainCountdown struct {
	engine *timer.Engine
	out    io.Writer
}

func newPlainCountdown(engine *timer.Engine, out io.Writer) *plainCountdown {
	return &plainCountdown{engine: engine, out: out}
}

func (c *plainCountdown) Run(ctx context.Context, minutes int, typ domain.SessionType) (domain.Outcome, error) {
	fmt.Fprintf(c.out, "%s session, %s. Press Ctrl+C to stop.\n",
		typ.Label(), formatter.FormatMinutes(minutes))

	out := c.engine.Run(ctx, minutes, typ, func(p timer.Progress) {
		fmt.Fprintf(c.out, "\r  %s %s",
			timer.FormatClock(p.Remaining),
			formatter.RenderProgress(p.Fraction, formatter.CountdownBarWidth))
	})

	clearLine(c.out)
	if out.Completed {
		fmt.Fprintf(c.out, "  %s %s\n", timer.FormatClock(0), formatter.StyleGreen.Render("Complete!"))
	} else {
		fmt.Fprintf(c.out, "  %s\n", formatter.StyleYellow.Render("Session stopped early"))
	}
	return out, nil
}

func clearLine(out io.Writer) {
	fmt.Fprint(out, "\r"+strings.Repeat(" ", 60)+"\r")
}

// stdinPrompter confirms the break via a plain y/n prompt.
type stdinPrompter struct {
	in  io.Reader
	out io.Writer
}

func newStdinPrompter(in io.Reader, out io.Writer) *stdinPrompter {
	return &stdinPrompter{in: in, out: out}
}

func (p *stdinPrompter) ConfirmBreak(ctx context.Context) (bool, error) {
	return promptYesNoIO(p.in, p.out, "\nWork session complete! Start break now? [Y/n] ", true), nil
}

// confirmPrompter confirms the break with a huh form on a terminal.
type confirmPrompter struct{}

func newConfirmPrompter() confirmPrompter { return confirmPrompter{} }

func (confirmPrompter) ConfirmBreak(ctx context.Context) (bool, error) {
	ok := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Work session complete!").
			Description("Time for a break.").
			Affirmative("Start break").
			Negative("Skip").
			Value(&ok),
	)).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("running break prompt: %w", err)
	}
	return ok, nil
}
