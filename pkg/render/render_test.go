package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"

	"laptudirm.com/x/connect4/pkg/board"
)

func TestBoard(t *testing.T) {
	is := is.New(t)

	b := board.New()
	is.NoErr(b.ApplyMove(3, board.Player1))
	is.NoErr(b.ApplyMove(3, board.Player2))
	is.NoErr(b.ApplyMove(4, board.Player1))

	var out bytes.Buffer
	is.NoErr(New(&out, false).Board(b))

	is.Equal(out.String(), ""+
		". . . . . . . \n"+
		". . . . . . . \n"+
		". . . . . . . \n"+
		". . . . . . . \n"+
		". . . O . . . \n"+
		". . . X X . . \n"+
		"0 1 2 3 4 5 6 \n")
}

func TestWinningCellsHighlighted(t *testing.T) {
	is := is.New(t)

	b := board.New()
	for _, column := range []int{0, 0, 1, 1, 2, 2, 3} {
		player := board.Player1
		if b.Moves()%2 == 1 {
			player = board.Player2
		}
		is.NoErr(b.ApplyMove(column, player))
	}

	var out bytes.Buffer
	is.NoErr(New(&out, true).Board(b))

	lines := strings.Split(out.String(), "\n")
	bottom := lines[board.Rows-1]

	// bold blue for the four in a row, yellow for the other player
	is.Equal(strings.Count(bottom, "\x1b[34;1m"), 4)
	is.Equal(strings.Count(lines[board.Rows-2], "\x1b[33m"), 3)
}

func TestReplay(t *testing.T) {
	is := is.New(t)

	b := board.New()
	is.NoErr(b.ApplyMove(6, board.Player1))
	is.NoErr(b.ApplyMove(5, board.Player2))

	var out bytes.Buffer
	is.NoErr(New(&out, false).Replay(b.History()))

	text := out.String()
	is.True(strings.Contains(text, "Move #1:\n"))
	is.True(strings.Contains(text, "Move #2:\n"))
	is.Equal(strings.Count(text, "0 1 2 3 4 5 6 \n"), 2)
	is.True(strings.HasSuffix(text, ". . . . . O X \n0 1 2 3 4 5 6 \n\n"))
}
