package stats

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestEloEvenScore(t *testing.T) {
	is := is.New(t)

	for _, wdl := range [][3]int{{0, 0, 0}, {5, 0, 5}, {0, 10, 0}, {3, 4, 3}} {
		lower, elo, upper := Elo(wdl[0], wdl[1], wdl[2])
		is.True(math.Abs(elo) < 1e-9)
		is.True(lower <= elo)
		is.True(upper >= elo)
	}
}

func TestEloSign(t *testing.T) {
	is := is.New(t)

	lower, elo, upper := Elo(7, 2, 1)
	is.True(elo > 0)
	is.True(lower < elo && elo < upper)

	_, elo, _ = Elo(1, 2, 7)
	is.True(elo < 0)
}

func TestEloKnownValue(t *testing.T) {
	is := is.New(t)

	// a 75% score is about 191 elo
	_, elo, _ := Elo(3, 0, 1)
	is.True(math.Abs(elo-190.85) < 0.01)
}

func TestEloPerfectScore(t *testing.T) {
	is := is.New(t)

	// a perfect score has no finite estimate
	_, elo, _ := Elo(10, 0, 0)
	is.Equal(elo, 0.0)
}

func TestError(t *testing.T) {
	is := is.New(t)
	is.Equal(Error(-10, 0, 20), 20.0)
	is.Equal(Error(-30, 0, 20), 30.0)
}

func TestScore(t *testing.T) {
	is := is.New(t)
	is.Equal(Score(0, 0, 0), 0.5)
	is.Equal(Score(1, 2, 1), 0.5)
	is.Equal(Score(3, 0, 1), 0.75)
}
