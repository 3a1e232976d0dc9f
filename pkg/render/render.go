// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render draws connect-four positions on a terminal.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"laptudirm.com/x/connect4/pkg/board"
)

// Symbols of the different cells.
const (
	SymbolEmpty   = "."
	SymbolPlayer1 = "X"
	SymbolPlayer2 = "O"
)

var symbols = [...]string{
	board.Empty:   SymbolEmpty,
	board.Player1: SymbolPlayer1,
	board.Player2: SymbolPlayer2,
}

type Renderer struct {
	out io.Writer

	player1, player2 *color.Color
	winning          *color.Color
}

// New creates a Renderer writing to out. The colored flag overrides the
// terminal detection of the color package.
func New(out io.Writer, colored bool) *Renderer {
	renderer := &Renderer{
		out:     out,
		player1: color.New(color.FgRed),
		player2: color.New(color.FgYellow),
		winning: color.New(color.FgBlue, color.Bold),
	}

	for _, c := range []*color.Color{renderer.player1, renderer.player2, renderer.winning} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return renderer
}

// Board draws the given board, highlighting the four in a row if a
// player has won.
func (renderer *Renderer) Board(b *board.Board) error {
	return renderer.Grid(b.Grid())
}

// Grid draws a single position.
func (renderer *Renderer) Grid(grid board.Grid) error {
	winning := grid.WinningCells()
	highlight := make(map[board.Square]bool, len(winning))
	for _, square := range winning {
		highlight[square] = true
	}

	w := bufio.NewWriter(renderer.out)
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Columns; col++ {
			cell := grid[row][col]

			symbol := renderer.symbol(cell)
			if highlight[board.Square{Row: row, Column: col}] {
				symbol = renderer.winning.Sprint(symbols[cell])
			}

			_, _ = w.WriteString(symbol + " ")
		}
		_ = w.WriteByte('\n')
	}

	for col := 0; col < board.Columns; col++ {
		_, _ = fmt.Fprintf(w, "%d ", col)
	}
	_ = w.WriteByte('\n')

	return w.Flush()
}

// Replay draws every position of a game's history, one after another.
func (renderer *Renderer) Replay(history []board.Grid) error {
	for i, grid := range history {
		if _, err := fmt.Fprintf(renderer.out, "Move #%d:\n", i+1); err != nil {
			return err
		}

		if err := renderer.Grid(grid); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(renderer.out); err != nil {
			return err
		}
	}

	return nil
}

// Clear clears the terminal screen.
func (renderer *Renderer) Clear() {
	fmt.Fprint(renderer.out, "\x1b[H\x1b[2J")
}

func (renderer *Renderer) symbol(cell board.Player) string {
	switch cell {
	case board.Player1:
		return renderer.player1.Sprint(SymbolPlayer1)
	case board.Player2:
		return renderer.player2.Sprint(SymbolPlayer2)
	default:
		return SymbolEmpty
	}
}
