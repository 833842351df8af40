package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "NAME"},
		[][]string{
			{"a1", "reading"},
			{"b2", "x"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[2], "reading")
	assert.Contains(t, lines[3], "b2")
}

func TestRenderTableEmpty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderProgress(t *testing.T) {
	out := RenderProgress(45, 90, 10)
	assert.Contains(t, out, "45/90 min")
	assert.Contains(t, out, filledBlock)
	assert.Contains(t, out, emptyBlock)

	full := RenderProgress(120, 90, 10)
	assert.Contains(t, full, "120/90 min")
	assert.NotContains(t, full, emptyBlock, "over-achievement caps the bar, not the numbers")

	zeroGoal := RenderProgress(0, 0, 10)
	assert.Contains(t, zeroGoal, "0/0 min")
}
