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

// Package strategy contains the different ways of choosing a move in a
// game of connect-four, from playing randomly to a full minimax search.
package strategy

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lukechampine.com/frand"

	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/search"
)

// Strategy chooses the column to play in a position. Every Strategy is
// bound to a single player when it is created.
type Strategy interface {
	ChooseMove(b *board.Board) (int, error)
}

// Kinds of strategies which can be created by New.
const (
	KindRandom    = "random"
	KindHeuristic = "heuristic"
	KindMinimax   = "minimax"
	KindHuman     = "human"
)

// DefaultDepth is the search depth of a minimax strategy whose
// configuration doesn't specify one.
const DefaultDepth = 6

var ErrUnknownKind = errors.New("strategy: unknown kind")

// Config describes a player.
type Config struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// Depth is the search depth of minimax players.
	Depth int `yaml:"depth"`

	// Seed makes the random choices of random and heuristic players
	// reproducible. A zero seed uses fresh entropy for every game.
	Seed uint64 `yaml:"seed"`
}

// ParseConfig parses the short player notation kind[:depth], as used on
// the command line, into a Config.
func ParseConfig(str string) (Config, error) {
	kind, depth, found := strings.Cut(str, ":")
	config := Config{Name: str, Kind: kind}

	if found {
		var err error
		if config.Depth, err = strconv.Atoi(depth); err != nil {
			return Config{}, fmt.Errorf("parse player %q: %w", str, err)
		}
	}

	return config, nil
}

// New creates a Strategy described by the given config which plays for
// the given player. Human strategies read from stdin and prompt on stdout.
func New(config Config, player board.Player) (Strategy, error) {
	if !player.Valid() {
		return nil, fmt.Errorf("new strategy: %w: %d", board.ErrInvalidPlayer, player)
	}

	switch config.Kind {
	case KindRandom, "":
		return NewRandom(player, config.rng()), nil
	case KindHeuristic:
		return NewHeuristic(player, config.rng()), nil
	case KindMinimax:
		depth := config.Depth
		if depth == 0 {
			depth = DefaultDepth
		}
		return NewSearch(player, depth), nil
	case KindHuman:
		return NewHuman(player, os.Stdin, os.Stdout), nil
	default:
		return nil, fmt.Errorf("new strategy: %w %q", ErrUnknownKind, config.Kind)
	}
}

func (config Config) rng() *frand.RNG {
	if config.Seed == 0 {
		return frand.New()
	}

	seed := make([]byte, 32)
	binary.LittleEndian.PutUint64(seed, config.Seed)
	return frand.NewCustom(seed, 1024, 12)
}

// Search chooses its moves with a minimax search of a fixed depth.
type Search struct {
	engine *search.Engine
}

var _ Strategy = (*Search)(nil)

func NewSearch(player board.Player, depth int) *Search {
	return &Search{engine: search.New(player, depth)}
}

func (s *Search) ChooseMove(b *board.Board) (int, error) {
	return s.engine.BestMove(b)
}

// Human asks a person for moves. The column typed is returned as is, even
// if it isn't a legal move, leaving it to the caller to ask again.
type Human struct {
	player board.Player

	in  *bufio.Reader
	out io.Writer
}

var ErrBadInput = errors.New("strategy: input is not a column")

var _ Strategy = (*Human)(nil)

func NewHuman(player board.Player, in io.Reader, out io.Writer) *Human {
	return &Human{player: player, in: bufio.NewReader(in), out: out}
}

func (h *Human) ChooseMove(b *board.Board) (int, error) {
	fmt.Fprintf(h.out, "%s, enter a column number (0-%d) to make a move: ", h.player, board.Columns-1)

	line, err := h.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && (err != io.EOF || line == "") {
		return -1, err
	}

	column, err := strconv.Atoi(line)
	if err != nil {
		return -1, fmt.Errorf("%w: %q", ErrBadInput, line)
	}

	return column, nil
}
