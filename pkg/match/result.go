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

package match

import (
	"fmt"

	"laptudirm.com/x/connect4/pkg/board"
)

// Result represents the result of a single game.
type Result int

const (
	Player1Wins Result = +1
	Draw        Result = 0
	Player2Wins Result = -1
)

// GameLostBy maps the index of the losing player to the game's Result.
var GameLostBy = [2]Result{
	0: Player2Wins,
	1: Player1Wins,
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Player1Wins:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Player2Wins:
		return "0-1"
	default:
		return "?-?"
	}
}

// Reasons for a game ending.
const (
	ReasonConnect   = "four in a row"
	ReasonBoardFull = "board full"
	ReasonIllegal   = "illegal move"
)

// Outcome describes how a game ended.
type Outcome struct {
	Result Result
	Reason string

	// Winner is the player who won the game, or board.Empty for a draw.
	Winner board.Player

	// Board is the final position of the game, along with its history.
	Board *board.Board
}

func (outcome Outcome) String() string {
	if outcome.Result == Draw {
		return fmt.Sprintf("%s: draw by %s", outcome.Result, outcome.Reason)
	}

	return fmt.Sprintf("%s: %s wins by %s", outcome.Result, outcome.Winner, outcome.Reason)
}
