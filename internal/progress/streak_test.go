package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreaks(t *testing.T) {
	tests := []struct {
		name        string
		completed   []bool
		wantCurrent int
		wantBest    int
	}{
		{"empty", nil, 0, 0},
		{"single completed", []bool{true}, 1, 1},
		{"single incomplete", []bool{false}, 0, 0},
		{"all completed", []bool{true, true, true, true}, 4, 4},
		{"broken in the middle", []bool{true, true, false, true, true}, 2, 2},
		{"best run before the break", []bool{true, true, true, false, true}, 1, 3},
		{"trailing incomplete resets current", []bool{true, true, true, false}, 0, 3},
		{"current is the trailing run", []bool{false, true, false, true, true, true}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, best := Streaks(tt.completed)
			assert.Equal(t, tt.wantCurrent, current, "current streak")
			assert.Equal(t, tt.wantBest, best, "best streak")
		})
	}
}
