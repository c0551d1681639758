package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/charmbracelet/huh"
)

// runMenu drives the interactive session loop: pick a flow, run it, show
// stats, repeat until quit. Quitting is a normal exit.
func runMenu(ctx context.Context, app *App) error {
	fmt.Println(formatter.StyleHeader.Render("POMODORO TIMER"))

	for {
		if ctx.Err() != nil {
			return nil
		}

		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(
					huh.NewOption(fmt.Sprintf("Start pomodoro (%d min work + %d min break)", app.Config.WorkMinutes, app.Config.BreakMinutes), "start"),
					huh.NewOption(fmt.Sprintf("Work session only (%d min)", app.Config.WorkMinutes), "work"),
					huh.NewOption(fmt.Sprintf("Break only (%d min)", app.Config.BreakMinutes), "break"),
					huh.NewOption("View stats", "stats"),
					huh.NewOption("Quit", "quit"),
				).
				Value(&choice),
		)).WithShowHelp(false)

		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("running menu: %w", err)
		}

		switch choice {
		case "start":
			if err := app.Sessions.RunCycle(ctx); err != nil {
				return err
			}
			if err := showStats(ctx, app); err != nil {
				return err
			}
		case "work":
			if _, err := app.Sessions.RunSession(ctx, domain.SessionWork, app.Config.WorkMinutes); err != nil {
				return err
			}
			if err := showStats(ctx, app); err != nil {
				return err
			}
		case "break":
			if _, err := app.Sessions.RunSession(ctx, domain.SessionBreak, app.Config.BreakMinutes); err != nil {
				return err
			}
		case "stats":
			if err := showStats(ctx, app); err != nil {
				return err
			}
		case "quit":
			fmt.Println(formatter.Dim("Keep being productive!"))
			return nil
		}
	}
}

func showStats(ctx context.Context, app *App) error {
	// Stats are shown right after a session that SIGINT may have just
	// interrupted; read on a detached context so the snapshot still
	// renders before the program winds down.
	snap, err := app.Sessions.Stats(context.WithoutCancel(ctx))
	if err != nil {
		return err
	}
	fmt.Println(formatter.FormatStats(snap))
	return nil
}
