package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45/90 min. The bar color
// tracks completion: green at or above two thirds, yellow above one third,
// red below.
func RenderProgress(completed, goal, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if goal > 0 {
		pct = float64(completed) / float64(goal)
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %d/%d min", style.Render(bar), completed, goal)
}
