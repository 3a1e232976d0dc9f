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

package tournament

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/strategy"
)

var ErrInvalidConfig = errors.New("tournament: invalid config")

type Config struct {
	// The players participating in the tournament.
	Players []strategy.Config `yaml:"players"`

	Scheduler string `yaml:"scheduler"`

	// 1 Tournament = {ROUNDS} Rounds
	// 1 Round      = {SOME_N} Encounters
	// 1 Encounter  = {GAME_P} Game Pairs
	// 1 Game Pair  = 2 Games
	Rounds    int `yaml:"rounds"`     // Number of rounds to run the tournament for.
	GamePairs int `yaml:"game-pairs"` // Number of game pairs per encounter in every round.

	// Number of games that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	// Number of illegal moves in a row which forfeit a game.
	MaxRetries int `yaml:"max-retries"`

	// Directory to store the history of every game in, if not empty.
	History string `yaml:"history"`
}

// LoadConfig reads a tournament's config from the given YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return ParseConfig(data)
}

// ParseConfig parses a YAML tournament config, filling in the defaults
// of missing fields and validating the rest.
func ParseConfig(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := config.normalize(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// normalize fills in the defaults of config and checks its validity.
func (config *Config) normalize() error {
	if len(config.Players) < 2 {
		return fmt.Errorf("%w: need at least 2 players, have %d", ErrInvalidConfig, len(config.Players))
	}

	for i := range config.Players {
		player := &config.Players[i]
		if player.Kind == strategy.KindHuman {
			return fmt.Errorf("%w: player %d: human players can't take part in tournaments", ErrInvalidConfig, i+1)
		}

		// check the player can be created before any games start
		if _, err := strategy.New(*player, board.Player1); err != nil {
			return fmt.Errorf("%w: player %d: %v", ErrInvalidConfig, i+1, err)
		}

		if player.Name == "" {
			player.Name = fmt.Sprintf("%s-%d", lo.Ternary(player.Kind == "", strategy.KindRandom, player.Kind), i+1)
		}
	}

	if _, err := NewScheduler(config.Scheduler); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	config.Rounds = max(config.Rounds, 1)
	config.GamePairs = max(config.GamePairs, 1)
	config.Concurrency = max(config.Concurrency, 1)

	return nil
}
