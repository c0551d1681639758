package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_Clamping(t *testing.T) {
	assert.Contains(t, RenderProgress(-0.5, 10), "  0%")
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
}

func TestRenderProgress_FillRatio(t *testing.T) {
	bar := RenderProgress(0.5, 30)
	assert.Equal(t, 15, strings.Count(bar, filledBlock))
	assert.Equal(t, 15, strings.Count(bar, emptyBlock))
	assert.Contains(t, bar, " 50%")
}

func TestRenderProgress_MinimumWidth(t *testing.T) {
	bar := RenderProgress(1.0, 0)
	assert.Equal(t, 2, strings.Count(bar, filledBlock))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "25 min", FormatMinutes(25))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 15m", FormatMinutes(75))
}
