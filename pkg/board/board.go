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

// Package board implements the connect-four grid: dropping tokens into
// columns, detecting four in a row, and keeping a history of every
// position reached by the game.
package board

import (
	"errors"
	"fmt"
)

const (
	Rows    = 6 // number of rows in the grid
	Columns = 7 // number of columns in the grid
	Connect = 4 // length of a winning run

	// Squares is the number of cells in the grid, and thus the maximum
	// number of moves which can be made in a single game.
	Squares = Rows * Columns
)

var (
	ErrInvalidColumn = errors.New("board: column out of range")
	ErrColumnFull    = errors.New("board: column is full")
	ErrInvalidPlayer = errors.New("board: invalid player")
	ErrInvalidGrid   = errors.New("board: invalid grid")

	// ErrEmptyMoveSet is reported by anything asked to pick a move on a
	// board with no legal moves, which is always a drawn position.
	ErrEmptyMoveSet = errors.New("board: no legal moves")
)

// Board represents the state of a game of connect-four. The zero value
// is not ready for use, New should be used to create a Board.
type Board struct {
	grid    Grid
	heights [Columns]int

	moves int

	// history of every position reached after a successful move. Forked
	// boards don't record history.
	history []Grid
	record  bool
}

// New returns an empty Board which records its history.
func New() *Board {
	return &Board{record: true}
}

// FromGrid creates a new Board with the given grid as its position. The
// grid is validated to make sure that every token is a valid player and
// that no token is floating above an empty cell. The returned Board has
// an empty history.
func FromGrid(grid Grid) (*Board, error) {
	b := New()
	b.grid = grid

columns:
	for col := 0; col < Columns; col++ {
		for row := Rows - 1; row >= 0; row-- {
			switch cell := grid[row][col]; cell {
			case Empty:
				// everything above an empty cell must be empty as well
				for above := row - 1; above >= 0; above-- {
					if grid[above][col] != Empty {
						return nil, fmt.Errorf("%w: floating token at row %d column %d", ErrInvalidGrid, above, col)
					}
				}
				continue columns
			case Player1, Player2:
				b.heights[col]++
				b.moves++
			default:
				return nil, fmt.Errorf("%w: cell value %d at row %d column %d", ErrInvalidGrid, cell, row, col)
			}
		}
	}

	return b, nil
}

// IsLegalMove checks if a token can be dropped into the given column.
func (b *Board) IsLegalMove(column int) bool {
	return column >= 0 && column < Columns && b.heights[column] < Rows
}

// LegalMoves returns the legal columns of the position in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.heights[col] < Rows {
			moves = append(moves, col)
		}
	}

	return moves
}

// ApplyMove drops the given player's token into the lowest empty cell of
// the given column and records the new position in the history. The board
// is left untouched if an error is returned.
func (b *Board) ApplyMove(column int, player Player) error {
	switch {
	case column < 0 || column >= Columns:
		return fmt.Errorf("%w: %d", ErrInvalidColumn, column)
	case !player.Valid():
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	case b.heights[column] >= Rows:
		return fmt.Errorf("%w: %d", ErrColumnFull, column)
	}

	b.drop(column, player)
	if b.record {
		b.history = append(b.history, b.grid)
	}

	return nil
}

// drop puts the token in place without any checks or history keeping.
func (b *Board) drop(column int, player Player) int {
	row := Rows - 1 - b.heights[column]
	b.grid[row][column] = player
	b.heights[column]++
	b.moves++
	return row
}

// undo removes the topmost token of the given column.
func (b *Board) undo(column int) {
	b.heights[column]--
	b.moves--
	b.grid[Rows-1-b.heights[column]][column] = Empty
}

// CanWinImmediately checks if dropping the player's token into the given
// column would complete a run of four. The token is placed temporarily
// and removed before returning, so the board and its history are left
// exactly as they were; the call is not safe for concurrent use with
// other readers of the same Board.
func (b *Board) CanWinImmediately(column int, player Player) bool {
	if !b.IsLegalMove(column) || !player.Valid() {
		return false
	}

	row := b.drop(column, player)
	defer b.undo(column)

	return b.grid.runThrough(row, column, player)
}

// Winner returns the player who has four tokens in a row on the board, or
// Empty if there is no such player.
func (b *Board) Winner() Player {
	return b.grid.Winner()
}

// Full checks if every cell of the board is occupied.
func (b *Board) Full() bool {
	return b.moves == Squares
}

// Moves returns the number of tokens on the board.
func (b *Board) Moves() int {
	return b.moves
}

// Height returns the number of tokens in the given column.
func (b *Board) Height(column int) int {
	return b.heights[column]
}

// At returns the token at the given cell.
func (b *Board) At(row, column int) Player {
	return b.grid[row][column]
}

// Grid returns a copy of the current position.
func (b *Board) Grid() Grid {
	return b.grid
}

// History returns the positions reached after every move, in order.
func (b *Board) History() []Grid {
	return append([]Grid(nil), b.history...)
}

// WinningCells returns every cell which is part of a run of four.
func (b *Board) WinningCells() []Square {
	return b.grid.WinningCells()
}

// Clone returns a deep copy of the board, history included.
func (b *Board) Clone() *Board {
	clone := *b
	clone.history = append([]Grid(nil), b.history...)
	return &clone
}

// Fork returns a copy of the position which doesn't record history. It
// is a plain value, so forking a board is a fixed size copy which never
// shares any state with its parent.
func (b *Board) Fork() Board {
	return Board{
		grid:    b.grid,
		heights: b.heights,
		moves:   b.moves,
	}
}

func (b *Board) String() string {
	return b.grid.String()
}
