package tournament

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestRoundRobin(t *testing.T) {
	for n := 2; n <= 9; n++ {
		is := is.New(t)

		var rr RoundRobin
		rr.Initialize(n)
		is.Equal(rr.TotalEncounters(), n*(n-1)/2)

		seen := map[[2]int]bool{}
		for i := 0; i < rr.TotalEncounters(); i++ {
			p1, p2 := rr.NextEncounter()
			is.True(p1 != p2)
			is.True(p1 >= 0 && p1 < n)
			is.True(p2 >= 0 && p2 < n)

			pair := [2]int{min(p1, p2), max(p1, p2)}
			is.True(!seen[pair]) // every pair meets once per round
			seen[pair] = true
		}

		is.Equal(len(seen), n*(n-1)/2)
	}
}

func TestGauntlet(t *testing.T) {
	is := is.New(t)

	var g Gauntlet
	g.Initialize(4)
	is.Equal(g.TotalEncounters(), 3)

	for i := 1; i <= 3; i++ {
		p1, p2 := g.NextEncounter()
		is.Equal(p1, 0)
		is.Equal(p2, i)
	}

	// a new round starts from the beginning
	g.Initialize(4)
	_, p2 := g.NextEncounter()
	is.Equal(p2, 1)
}

func TestNewScheduler(t *testing.T) {
	is := is.New(t)

	s, err := NewScheduler("")
	is.NoErr(err)
	_, ok := s.(*RoundRobin)
	is.True(ok)

	s, err = NewScheduler(SchedulerGauntlet)
	is.NoErr(err)
	_, ok = s.(*Gauntlet)
	is.True(ok)

	_, err = NewScheduler("swiss")
	is.True(errors.Is(err, ErrUnknownScheduler))
}
