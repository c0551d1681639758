package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatStats(t *testing.T) {
	out := FormatStats(domain.StatsSnapshot{
		TodayCount:   2,
		TodayMinutes: 50,
		WeekCount:    7,
		WeekMinutes:  175,
	})

	assert.Contains(t, out, "POMODORO STATS")
	assert.Contains(t, out, "Today:")
	assert.Contains(t, out, "50 min")
	assert.Contains(t, out, "This week:")
	assert.Contains(t, out, "2h 55m")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"TYPE", "DURATION"},
		[][]string{
			{"work", "25 min"},
			{"break", "5 min"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "TYPE")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "work")
	assert.Contains(t, lines[3], "break")
}
