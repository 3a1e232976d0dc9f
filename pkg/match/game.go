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

// Package match plays single games of connect-four between two strategies.
package match

import (
	"errors"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/strategy"
)

// DefaultMaxRetries is the number of illegal columns in a row a player
// may choose before forfeiting, if the Config doesn't say otherwise.
const DefaultMaxRetries = 3

// Observer is called with the board after every successful move.
type Observer func(b *board.Board, player board.Player, column int)

type Config struct {
	Players [2]strategy.Config `yaml:"players"`

	// MaxRetries is the number of illegal columns in a row a player may
	// choose before forfeiting. Zero means DefaultMaxRetries and a
	// negative value allows unlimited retries.
	MaxRetries int `yaml:"max-retries"`

	Observer Observer `yaml:"-"`
}

func (config *Config) maxRetries() int {
	if config.MaxRetries == 0 {
		return DefaultMaxRetries
	}

	return config.MaxRetries
}

// Run creates the strategies described by the config and plays a game
// between them.
func Run(config *Config) (Outcome, error) {
	var players [2]strategy.Strategy
	for i, player := range config.Players {
		var err error
		if players[i], err = strategy.New(player, board.Player(i+1)); err != nil {
			return Outcome{}, err
		}
	}

	return Play(players, config), nil
}

// Play plays a game between the two strategies, the first of which moves
// first as board.Player1. Only the players, MaxRetries, and Observer
// fields of the config are used.
func Play(players [2]strategy.Strategy, config *Config) Outcome {
	b := board.New()

	maxRetries := config.maxRetries()

	// : PlayerIndex
	playerToMove := 0
	retries := 0
	for {
		player := board.Player(playerToMove + 1)

		column, err := players[playerToMove].ChooseMove(b)
		if err == nil {
			err = b.ApplyMove(column, player)
		}

		switch {
		case err == nil:
			retries = 0

		case errors.Is(err, board.ErrEmptyMoveSet):
			return Outcome{Result: Draw, Reason: ReasonBoardFull, Board: b}

		case errors.Is(err, board.ErrColumnFull),
			errors.Is(err, board.ErrInvalidColumn),
			errors.Is(err, strategy.ErrBadInput):
			retries++
			logrus.WithFields(logrus.Fields{
				"player":  player,
				"column":  column,
				"retries": retries,
			}).Warn(err)

			if maxRetries >= 0 && retries >= maxRetries {
				return lost(playerToMove, ReasonIllegal, b)
			}

			// same player, same turn
			continue

		default:
			return lost(playerToMove, "strategy error: "+err.Error(), b)
		}

		logrus.WithFields(logrus.Fields{
			"player": player,
			"column": column,
			"move":   b.Moves(),
		}).Debug("move played")

		if config.Observer != nil {
			config.Observer(b, player, column)
		}

		if winner := b.Winner(); winner != board.Empty {
			return Outcome{
				Result: GameLostBy[winner.Opponent()-1],
				Reason: ReasonConnect,
				Winner: winner,
				Board:  b,
			}
		}

		if b.Full() {
			return Outcome{Result: Draw, Reason: ReasonBoardFull, Board: b}
		}

		playerToMove ^= 1
	}
}

// lost ends the game with a loss for the player with the given index.
func lost(loser int, reason string, b *board.Board) Outcome {
	return Outcome{
		Result: GameLostBy[loser],
		Reason: reason,
		Winner: board.Player(loser + 1).Opponent(),
		Board:  b,
	}
}
