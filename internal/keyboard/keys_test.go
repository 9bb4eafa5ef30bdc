package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	keys := Default()

	tests := []struct {
		key      string
		bindings []string
		want     bool
	}{
		{"up", keys.Up, true},
		{"ctrl+p", keys.Up, true},
		{"ctrl+n", keys.Down, true},
		{"down", keys.Up, false},
		{"enter", []string{keys.Switch}, true},
		{"ctrl+y", []string{keys.Copy, keys.Quit}, true},
		{"q", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.key, tt.bindings...))
		})
	}
}
