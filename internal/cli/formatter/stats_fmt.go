package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pomo/internal/domain"
)

// FormatStats formats a StatsSnapshot into a styled summary box.
func FormatStats(snap domain.StatsSnapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s sessions %s\n",
		Bold("Today:    "),
		StyleGreen.Render(fmt.Sprintf("%d", snap.TodayCount)),
		Dim(fmt.Sprintf("(%s)", FormatMinutes(snap.TodayMinutes))),
	))
	b.WriteString(fmt.Sprintf("%s  %s sessions %s",
		Bold("This week:"),
		StyleGreen.Render(fmt.Sprintf("%d", snap.WeekCount)),
		Dim(fmt.Sprintf("(%s)", FormatMinutes(snap.WeekMinutes))),
	))

	return RenderBox("Pomodoro Stats", b.String())
}
