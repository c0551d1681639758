package cli

import (
	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
)

// renderSessionTable renders a log as a boxed table, newest record last.
func renderSessionTable(app *App, log domain.SessionLog) string {
	now := app.Clock.Now()

	headers := []string{"TYPE", "DURATION", "OUTCOME", "WHEN"}
	rows := make([][]string, 0, len(log))
	for _, rec := range log {
		when := formatter.Dim(rec.Timestamp)
		if ts, err := domain.ParseTimestamp(rec.Timestamp); err == nil {
			when = formatter.HumanTimestamp(ts, now)
		}
		rows = append(rows, []string{
			formatter.SessionPill(rec.Type),
			formatter.FormatMinutes(rec.Duration),
			formatter.OutcomePill(rec.Completed),
			when,
		})
	}

	return formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows))
}
