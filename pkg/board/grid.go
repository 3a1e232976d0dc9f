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

package board

import (
	"strconv"
	"strings"
)

// Player represents the contents of a cell of the grid: either Empty, or
// the token of one of the two players.
type Player uint8

const (
	Empty Player = iota
	Player1
	Player2
)

// Valid checks if the Player is one of the two players.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other player. It is only meaningful for valid
// players.
func (p Player) Opponent() Player {
	return 3 - p
}

func (p Player) String() string {
	switch p {
	case Empty:
		return "empty"
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return "player ?"
	}
}

// Square is the location of a single cell. Row 0 is the top of the grid.
type Square struct {
	Row, Column int
}

// Grid is a fixed size matrix of cells, with Rows rows and Columns
// columns. It is a value type, so assigning a Grid copies it.
type Grid [Rows][Columns]Player

// directions in which runs are searched for, starting from a cell:
// right, down, down-right and down-left.
var directions = [4]Square{
	{Row: 0, Column: 1},
	{Row: 1, Column: 0},
	{Row: 1, Column: 1},
	{Row: 1, Column: -1},
}

func inside(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// runFrom checks if there are Connect tokens of the given player starting
// from the given cell and continuing in the given direction.
func (grid *Grid) runFrom(row, col int, dir Square, player Player) bool {
	for i := 0; i < Connect; i++ {
		if !inside(row, col) || grid[row][col] != player {
			return false
		}

		row += dir.Row
		col += dir.Column
	}

	return true
}

// count returns the number of consecutive tokens of the player after the
// given cell, excluding the cell itself, in the given direction.
func (grid *Grid) count(row, col int, dir Square, player Player) int {
	n := 0
	for {
		row += dir.Row
		col += dir.Column
		if !inside(row, col) || grid[row][col] != player {
			return n
		}
		n++
	}
}

// runThrough checks if the given cell is part of a run of the player's
// tokens on any of the four lines passing through it.
func (grid *Grid) runThrough(row, col int, player Player) bool {
	for _, dir := range directions {
		back := Square{Row: -dir.Row, Column: -dir.Column}
		if 1+grid.count(row, col, dir, player)+grid.count(row, col, back, player) >= Connect {
			return true
		}
	}

	return false
}

// Winner scans every occupied cell for a run of four and returns the
// player owning the first one found, or Empty.
func (grid *Grid) Winner() Player {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			player := grid[row][col]
			if player == Empty {
				continue
			}

			for _, dir := range directions {
				if grid.runFrom(row, col, dir, player) {
					return player
				}
			}
		}
	}

	return Empty
}

// WinningCells returns every cell which is part of some run of four, in
// row-major order.
func (grid *Grid) WinningCells() []Square {
	var marked [Rows][Columns]bool
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			player := grid[row][col]
			if player == Empty {
				continue
			}

			for _, dir := range directions {
				if !grid.runFrom(row, col, dir, player) {
					continue
				}

				for i := 0; i < Connect; i++ {
					marked[row+i*dir.Row][col+i*dir.Column] = true
				}
			}
		}
	}

	var cells []Square
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if marked[row][col] {
				cells = append(cells, Square{Row: row, Column: col})
			}
		}
	}

	return cells
}

// Swapped returns a copy of the grid with the two players' tokens
// exchanged.
func (grid Grid) Swapped() Grid {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if grid[row][col].Valid() {
				grid[row][col] = grid[row][col].Opponent()
			}
		}
	}

	return grid
}

// String returns the grid as Rows lines of comma separated cell values,
// top row first.
func (grid Grid) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if col > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(grid[row][col])))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
