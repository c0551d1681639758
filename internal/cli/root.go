package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/pomo/internal/db"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/service"
	"github.com/alexanderramin/pomo/internal/store"
	"github.com/alexanderramin/pomo/internal/timer"
	"github.com/spf13/cobra"
)

// App holds the wired collaborators used by CLI commands. Sessions and
// Store are populated from the root flags before any command runs.
type App struct {
	Config   domain.Config
	Sessions service.Orchestrator
	Store    store.Store
	Clock    timer.Clock

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool

	cleanup func()
}

type rootOptions struct {
	workMinutes  int
	breakMinutes int
	dataPath     string
	backend      string
}

// NewRootCmd creates the top-level "pomo" command and registers all
// subcommands against the provided App. Running without a subcommand on a
// terminal opens the interactive menu.
func NewRootCmd(app *App) *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:           "pomo",
		Short:         "Pomodoro timer and session tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.configure(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runMenu(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&opts.workMinutes, "work", 25, "Work session length in minutes")
	pf.IntVar(&opts.breakMinutes, "break", 5, "Break session length in minutes")
	pf.StringVar(&opts.dataPath, "data", "", "Storage location (default ~/.pomo/sessions.json)")
	pf.StringVar(&opts.backend, "backend", "json", "Storage backend: json or sqlite")

	root.AddCommand(
		newStartCmd(app),
		newWorkCmd(app),
		newBreakCmd(app),
		newStatsCmd(app),
		newSessionsCmd(app),
	)

	return root
}

// configure wires the store, engine, and orchestrator from the parsed
// root flags. Storage location and durations are always explicit; there
// is no implicit global path.
func (a *App) configure(opts rootOptions) error {
	if opts.workMinutes <= 0 || opts.breakMinutes <= 0 {
		return fmt.Errorf("session lengths must be positive (got work=%d, break=%d)", opts.workMinutes, opts.breakMinutes)
	}
	a.Config = domain.Config{WorkMinutes: opts.workMinutes, BreakMinutes: opts.breakMinutes}

	if a.Clock == nil {
		a.Clock = timer.SystemClock{}
	}

	switch opts.backend {
	case "json":
		path, err := resolveDataPath(opts.dataPath, "sessions.json")
		if err != nil {
			return err
		}
		a.Store = store.NewJSONFileStore(path)
	case "sqlite":
		path, err := resolveDataPath(opts.dataPath, "pomo.db")
		if err != nil {
			return err
		}
		database, err := db.OpenDB(path)
		if err != nil {
			return fmt.Errorf("opening session database: %w", err)
		}
		a.cleanup = func() { database.Close() }
		a.Store = store.NewSQLiteStore(database)
	default:
		return fmt.Errorf("unknown storage backend %q (want json or sqlite)", opts.backend)
	}

	interactive := a.IsInteractive != nil && a.IsInteractive()
	engine := timer.NewEngine(a.Clock, timer.DefaultPollInterval)

	var countdown service.Countdown
	var prompter service.Prompter
	if interactive {
		countdown = newCountdownUI(engine)
		prompter = newConfirmPrompter()
	} else {
		countdown = newPlainCountdown(engine, os.Stdout)
		prompter = newStdinPrompter(os.Stdin, os.Stdout)
	}

	a.Sessions = service.NewOrchestrator(a.Config, countdown, a.Store, prompter, a.Clock)
	return nil
}

func (a *App) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

func resolveDataPath(flagPath, defaultName string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".pomo", defaultName), nil
}
