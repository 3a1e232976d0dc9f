package util

import (
	"slices"
	"testing"

	"github.com/matryer/is"
)

func TestAlphanumCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"game-2", "game-10", -1},
		{"game-10", "game-2", +1},
		{"game-2", "game-2", 0},
		{"game", "game-1", -1},
		{"round-1-game-9", "round-2-game-1", -1},
		{"a", "b", -1},
		{"007", "7", -1},
	}

	for _, tt := range tests {
		is := is.New(t)
		is.Equal(AlphanumCompare(tt.a, tt.b), tt.want)
	}
}

func TestAlphanumSort(t *testing.T) {
	is := is.New(t)

	names := []string{"round-1-game-10", "round-1-game-2", "round-10-game-1", "round-2-game-1", "round-1-game-1"}
	slices.SortFunc(names, AlphanumCompare)

	is.Equal(names, []string{"round-1-game-1", "round-1-game-2", "round-1-game-10", "round-2-game-1", "round-10-game-1"})
}
