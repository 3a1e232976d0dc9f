package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

// play applies the given moves alternately, starting with Player1.
func play(t *testing.T, b *Board, columns ...int) {
	t.Helper()
	player := Player1
	for _, col := range columns {
		if err := b.ApplyMove(col, player); err != nil {
			t.Fatalf("move %d: %v", col, err)
		}
		player = player.Opponent()
	}
}

func TestApplyMove(t *testing.T) {
	is := is.New(t)
	b := New()

	is.NoErr(b.ApplyMove(3, Player1))
	is.Equal(b.At(Rows-1, 3), Player1)
	is.Equal(b.Height(3), 1)
	is.Equal(b.Moves(), 1)
	is.Equal(len(b.History()), 1)

	is.NoErr(b.ApplyMove(3, Player2))
	is.Equal(b.At(Rows-2, 3), Player2)
	is.Equal(b.History()[0].String(), "0,0,0,0,0,0,0\n0,0,0,0,0,0,0\n0,0,0,0,0,0,0\n0,0,0,0,0,0,0\n0,0,0,0,0,0,0\n0,0,0,1,0,0,0\n")
}

func TestApplyMoveColumnFull(t *testing.T) {
	is := is.New(t)
	b := New()

	for i := 0; i < Rows; i++ {
		is.NoErr(b.ApplyMove(0, Player1))
	}

	before := b.Grid()
	history := len(b.History())

	err := b.ApplyMove(0, Player1)
	is.True(errors.Is(err, ErrColumnFull))
	is.True(!b.IsLegalMove(0))
	is.Equal(b.Grid(), before)
	is.Equal(len(b.History()), history)
	is.Equal(b.Moves(), Rows)
}

func TestApplyMoveInvalid(t *testing.T) {
	tests := []struct {
		name   string
		column int
		player Player
		err    error
	}{
		{"negative column", -1, Player1, ErrInvalidColumn},
		{"column too large", Columns, Player1, ErrInvalidColumn},
		{"empty player", 0, Empty, ErrInvalidPlayer},
		{"unknown player", 0, Player(3), ErrInvalidPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			b := New()

			err := b.ApplyMove(tt.column, tt.player)
			is.True(errors.Is(err, tt.err))
			is.Equal(b.Grid(), Grid{})
			is.Equal(len(b.History()), 0)
		})
	}
}

func TestIsLegalMove(t *testing.T) {
	is := is.New(t)
	b := New()

	is.True(!b.IsLegalMove(-1))
	is.True(!b.IsLegalMove(Columns))
	for col := 0; col < Columns; col++ {
		is.True(b.IsLegalMove(col))
	}

	play(t, b, 6, 6, 6, 6, 6, 6)
	is.True(!b.IsLegalMove(6))
	is.Equal(b.LegalMoves(), []int{0, 1, 2, 3, 4, 5})
}

func TestGravity(t *testing.T) {
	is := is.New(t)
	b := New()

	// a fixed pseudo-random sequence which fills the whole board
	col := 0
	for b.Moves() < Squares {
		for !b.IsLegalMove(col) {
			col = (col + 1) % Columns
		}
		player := Player1
		if b.Moves()%2 == 1 {
			player = Player2
		}
		is.NoErr(b.ApplyMove(col, player))
		col = (col*3 + 2) % Columns

		for c := 0; c < Columns; c++ {
			h := b.Height(c)
			is.True(h >= 0 && h <= Rows)
			for row := 0; row < Rows; row++ {
				occupied := b.At(row, c) != Empty
				is.Equal(occupied, row >= Rows-h) // tokens are stacked from the bottom
			}
		}
	}

	is.True(b.Full())
	is.Equal(len(b.LegalMoves()), 0)
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		moves  []int
		winner Player
	}{
		{"empty", nil, Empty},
		{"horizontal", []int{0, 0, 1, 1, 2, 2, 3}, Player1},
		{"vertical", []int{0, 1, 0, 1, 0, 1, 2, 1}, Player2},
		{"rising diagonal", []int{0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3}, Player1},
		{"falling diagonal", []int{6, 5, 5, 4, 4, 3, 4, 3, 3, 0, 3}, Player1},
		{"three only", []int{0, 0, 1, 1, 2, 2}, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			b := New()
			play(t, b, tt.moves...)
			is.Equal(b.Winner(), tt.winner)
		})
	}
}

func TestWinnerSinglePlayerRow(t *testing.T) {
	for _, player := range []Player{Player1, Player2} {
		is := is.New(t)
		b := New()
		for col := 0; col < 4; col++ {
			is.NoErr(b.ApplyMove(col, player))
		}
		is.Equal(b.Winner(), player)
	}
}

func TestWinnerSymmetry(t *testing.T) {
	games := [][]int{
		{0, 0, 1, 1, 2, 2, 3},
		{0, 1, 0, 1, 0, 1, 2, 1},
		{3, 3, 4, 4, 2},
		{6, 5, 5, 4, 4, 3, 4, 3, 3, 0, 3},
	}

	for _, moves := range games {
		is := is.New(t)
		b := New()
		play(t, b, moves...)

		swapped, err := FromGrid(b.Grid().Swapped())
		is.NoErr(err)

		switch winner := b.Winner(); winner {
		case Empty:
			is.Equal(swapped.Winner(), Empty)
		default:
			is.Equal(swapped.Winner(), winner.Opponent())
		}
	}
}

func TestCanWinImmediately(t *testing.T) {
	is := is.New(t)
	b := New()

	// player 1 has 0, 1, 2 on the bottom row, player 2 is stacked on top
	play(t, b, 0, 0, 1, 1, 2, 2)

	is.True(b.CanWinImmediately(3, Player1))
	is.True(!b.CanWinImmediately(3, Player2))
	is.True(!b.CanWinImmediately(4, Player1))
	is.True(!b.CanWinImmediately(-1, Player1))
	is.True(!b.CanWinImmediately(Columns, Player1))

	// runs where the new token sits in the middle are found as well
	mid := New()
	play(t, mid, 0, 6, 1, 6, 3, 5)
	is.True(mid.CanWinImmediately(2, Player1))
}

func TestCanWinImmediatelyIsPure(t *testing.T) {
	is := is.New(t)
	b := New()
	play(t, b, 0, 0, 1, 1, 2, 2, 6, 6, 6, 6, 6, 6)

	grid, history, moves := b.Grid(), b.History(), b.Moves()
	for i := 0; i < 3; i++ {
		for col := -1; col <= Columns; col++ {
			b.CanWinImmediately(col, Player1)
			b.CanWinImmediately(col, Player2)
		}
	}

	is.Equal(b.Grid(), grid)
	is.Equal(b.History(), history)
	is.Equal(b.Moves(), moves)
	is.Equal(b.Height(6), Rows)
}

func TestClone(t *testing.T) {
	is := is.New(t)
	b := New()
	play(t, b, 3, 3, 2)

	clone := b.Clone()
	is.Equal(clone.Grid(), b.Grid())
	is.Equal(clone.History(), b.History())

	is.NoErr(clone.ApplyMove(4, Player2))
	is.Equal(b.Moves(), 3)
	is.Equal(len(b.History()), 3)
	is.Equal(b.At(Rows-1, 4), Empty)
	is.Equal(len(clone.History()), 4)
}

func TestFork(t *testing.T) {
	is := is.New(t)
	b := New()
	play(t, b, 3, 3)

	fork := b.Fork()
	is.NoErr(fork.ApplyMove(0, Player1))
	is.Equal(len(fork.History()), 0)
	is.Equal(b.At(Rows-1, 0), Empty)
	is.Equal(b.Moves(), 2)
	is.Equal(fork.Moves(), 3)
}

func TestWinningCells(t *testing.T) {
	is := is.New(t)
	b := New()
	play(t, b, 0, 0, 1, 1, 2, 2, 3)

	is.Equal(b.WinningCells(), []Square{
		{Row: Rows - 1, Column: 0},
		{Row: Rows - 1, Column: 1},
		{Row: Rows - 1, Column: 2},
		{Row: Rows - 1, Column: 3},
	})

	is.Equal(len(New().WinningCells()), 0)
}

func TestFromGrid(t *testing.T) {
	is := is.New(t)

	b := New()
	play(t, b, 3, 3, 4, 2)
	loaded, err := FromGrid(b.Grid())
	is.NoErr(err)
	is.Equal(loaded.Moves(), 4)
	is.Equal(loaded.Height(3), 2)
	is.Equal(len(loaded.History()), 0)

	var floating Grid
	floating[0][0] = Player1
	_, err = FromGrid(floating)
	is.True(errors.Is(err, ErrInvalidGrid))

	var bad Grid
	bad[Rows-1][0] = Player(7)
	_, err = FromGrid(bad)
	is.True(errors.Is(err, ErrInvalidGrid))
}
