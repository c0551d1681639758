package cli

import (
	"fmt"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Run a full pomodoro cycle (work then break)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.RunCycle(cmd.Context()); err != nil {
				return err
			}
			return showStats(cmd.Context(), app)
		},
	}
}

func newWorkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "work",
		Short: "Run a work session only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Sessions.RunSession(cmd.Context(), domain.SessionWork, app.Config.WorkMinutes); err != nil {
				return err
			}
			return showStats(cmd.Context(), app)
		},
	}
}

func newBreakCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "break",
		Short: "Run a break session only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.Sessions.RunSession(cmd.Context(), domain.SessionBreak, app.Config.BreakMinutes)
			return err
		},
	}
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show today/this-week session statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showStats(cmd.Context(), app)
		},
	}
}

func newSessionsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recorded sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.Sessions.History(cmd.Context(), days)
			if err != nil {
				return err
			}
			if len(log) == 0 {
				fmt.Println("No sessions recorded.")
				return nil
			}
			fmt.Print(renderSessionTable(app, log))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show (0 for all)")

	return cmd
}
