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

// Package search implements a fixed depth minimax search with alpha-beta
// pruning for connect-four positions. The root moves are searched in
// parallel, everything below them is searched sequentially.
package search

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/connect4/pkg/board"
)

// Score is the value of a position from the point of view of the engine.
type Score int

const (
	Win  Score = +1
	Draw Score = 0
	Loss Score = -1

	// bounds of the alpha-beta window
	minScore Score = math.MinInt
	maxScore Score = math.MaxInt
)

// Result is the score of a single root move.
type Result struct {
	Column int
	Score  Score

	// Nodes is the number of positions visited while scoring the move.
	Nodes int
}

// Engine searches for the best move of a single player.
type Engine struct {
	Player board.Player

	// Depth is the number of plies searched after the root move. The root
	// move is always played, so an Engine with Depth 1 sees the opponent's
	// reply to each of its candidate moves.
	Depth int
}

// New creates a new Engine which plays for the given player.
func New(player board.Player, depth int) *Engine {
	return &Engine{Player: player, Depth: depth}
}

// BestMove returns the column with the highest score for the engine's
// player. Ties are broken in favour of the lowest column, so the result
// doesn't depend on the order in which the root moves finish.
func (engine *Engine) BestMove(b *board.Board) (int, error) {
	results, err := engine.Scores(b)
	if err != nil {
		return -1, err
	}

	best := results[0]
	nodes := best.Nodes
	for _, result := range results[1:] {
		nodes += result.Nodes
		if result.Score > best.Score {
			best = result
		}
	}

	logrus.WithFields(logrus.Fields{
		"player": engine.Player,
		"depth":  engine.Depth,
		"column": best.Column,
		"score":  best.Score,
		"nodes":  nodes,
	}).Debug("search finished")

	return best.Column, nil
}

// Scores searches every legal root move and returns their results in
// ascending column order. Every root move is searched in its own goroutine
// on its own copy of the board; b itself is never modified.
func (engine *Engine) Scores(b *board.Board) ([]Result, error) {
	if !engine.Player.Valid() {
		return nil, fmt.Errorf("search: %w: %d", board.ErrInvalidPlayer, engine.Player)
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		return nil, board.ErrEmptyMoveSet
	}

	results := make([]Result, len(moves))

	var group errgroup.Group
	for i, column := range moves {
		i, column := i, column
		child := b.Fork()

		group.Go(func() error {
			if err := child.ApplyMove(column, engine.Player); err != nil {
				return err
			}

			nodes := 0
			score := engine.eval(&child, engine.Depth, minScore, maxScore, false, &nodes)

			// each goroutine owns exactly one slot of results
			results[i] = Result{Column: column, Score: score, Nodes: nodes}

			logrus.WithFields(logrus.Fields{
				"column": column,
				"score":  score,
				"nodes":  nodes,
			}).Trace("root move searched")
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// eval is a plain minimax search with alpha-beta pruning. maximizing is
// true when it is the engine's player to move in the given position.
func (engine *Engine) eval(b *board.Board, depth int, alpha, beta Score, maximizing bool, nodes *int) Score {
	*nodes++

	if depth <= 0 || b.Winner() != board.Empty {
		return engine.Evaluate(b)
	}

	player, best := engine.Player, minScore
	if !maximizing {
		player, best = engine.Player.Opponent(), maxScore
	}

	searched := false
	for column := 0; column < board.Columns; column++ {
		if !b.IsLegalMove(column) {
			continue
		}

		child := b.Fork()
		_ = child.ApplyMove(column, player)
		score := engine.eval(&child, depth-1, alpha, beta, !maximizing, nodes)
		searched = true

		if maximizing {
			best = max(best, score)
			alpha = max(alpha, best)
		} else {
			best = min(best, score)
			beta = min(beta, best)
		}

		if beta <= alpha {
			break
		}
	}

	// a full board without a winner
	if !searched {
		return Draw
	}

	return best
}

// Evaluate scores a position by its winner alone: positions which aren't
// won by either player are worth a Draw no matter how they look.
func (engine *Engine) Evaluate(b *board.Board) Score {
	switch b.Winner() {
	case engine.Player:
		return Win
	case engine.Player.Opponent():
		return Loss
	default:
		return Draw
	}
}
