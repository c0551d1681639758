package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// CountdownBarWidth is the segment count of the live countdown bar.
const CountdownBarWidth = 30

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The input fraction is clamped to [0,1]. The bar warms from blue to
// green as the session nears completion.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleBlue
	if pct >= 0.66 {
		style = StyleGreen
	} else if pct >= 0.33 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
