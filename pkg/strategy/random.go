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

package strategy

import (
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"laptudirm.com/x/connect4/pkg/board"
)

// Random plays a uniformly random legal move.
type Random struct {
	player board.Player
	rng    *frand.RNG
}

var _ Strategy = (*Random)(nil)

// NewRandom creates a new Random strategy. A nil rng is replaced by a
// freshly seeded one.
func NewRandom(player board.Player, rng *frand.RNG) *Random {
	if rng == nil {
		rng = frand.New()
	}

	return &Random{player: player, rng: rng}
}

func (r *Random) ChooseMove(b *board.Board) (int, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return -1, board.ErrEmptyMoveSet
	}

	return moves[r.rng.Intn(len(moves))], nil
}

// Heuristic looks a single move ahead: it plays a winning move if there
// is one, blocks the opponent's winning move otherwise, and plays
// randomly if neither exists.
type Heuristic struct {
	player board.Player
	random *Random
}

var _ Strategy = (*Heuristic)(nil)

func NewHeuristic(player board.Player, rng *frand.RNG) *Heuristic {
	return &Heuristic{player: player, random: NewRandom(player, rng)}
}

func (h *Heuristic) ChooseMove(b *board.Board) (int, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return -1, board.ErrEmptyMoveSet
	}

	for _, player := range [2]board.Player{h.player, h.player.Opponent()} {
		if column, found := lo.Find(moves, func(column int) bool {
			return b.CanWinImmediately(column, player)
		}); found {
			return column, nil
		}
	}

	return h.random.ChooseMove(b)
}
