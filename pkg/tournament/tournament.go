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

// Package tournament runs many games between a set of players
// concurrently and keeps their scores.
package tournament

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/connect4/pkg/history"
	"laptudirm.com/x/connect4/pkg/match"
	"laptudirm.com/x/connect4/pkg/stats"
	"laptudirm.com/x/connect4/pkg/strategy"
)

// ReportInterval is the number of results between two score tables.
const ReportInterval = 5

func NewTournament(config Config) (*Tournament, error) {
	if err := config.normalize(); err != nil {
		return nil, err
	}

	var tour Tournament
	tour.Config = config
	tour.Scores = make([]Score, len(config.Players))
	tour.Output = os.Stdout

	var err error
	tour.Scheduler, err = NewScheduler(config.Scheduler)
	if err != nil {
		return nil, err
	}

	tour.games = make(chan *Game)
	tour.results = make(chan Result)

	return &tour, nil
}

type Tournament struct {
	Config Config

	Scheduler Scheduler

	// Output is where the score tables are written to. A spinner is
	// shown while games are running if it is a terminal.
	Output io.Writer

	games   chan *Game
	results chan Result

	errOnce sync.Once
	err     error

	Games  int
	Scores []Score
}

// Score is the tally of a single player's games.
type Score struct {
	Wins, Losses, Draws int
}

func (score Score) Total() int {
	return score.Wins + score.Losses + score.Draws
}

// Start plays every game of the tournament and returns the final
// standings. Errors in individual games don't stop the tournament; the
// first one is returned after all games have finished.
func (tour *Tournament) Start() (Standings, error) {
	// 1 Tournament = {ROUNDS} Rounds
	// 1 Round      = {SOME_N} Encounters
	// 1 Encounter  = {GAME_P} Game Pairs
	// 1 Game Pair  = 2 Games

	total := tour.TotalGames()
	go tour.schedule()

	var threads sync.WaitGroup
	for i := 0; i < tour.Config.Concurrency; i++ {
		threads.Add(1)
		go func() {
			defer threads.Done()
			tour.Thread()
		}()
	}

	go func() {
		threads.Wait()
		close(tour.results)
	}()

	s := tour.spinner()
	s.Start()
	tour.ResultHandler(s, total)
	s.Stop()

	tour.Report()
	return tour.Standings(), tour.err
}

// TotalGames returns the number of games played in the tournament. It
// resets the Scheduler, so it must not be called while games are running.
func (tour *Tournament) TotalGames() int {
	tour.Scheduler.Initialize(len(tour.Config.Players))
	return tour.Config.Rounds * tour.Scheduler.TotalEncounters() * tour.Config.GamePairs * 2
}

func (tour *Tournament) schedule() {
	defer close(tour.games)

	number := 0
	for round := 0; round < tour.Config.Rounds; round++ {
		tour.Scheduler.Initialize(len(tour.Config.Players))

		for encounter := 0; encounter < tour.Scheduler.TotalEncounters(); encounter++ {
			p1, p2 := tour.Scheduler.NextEncounter()

			for pair := 0; pair < tour.Config.GamePairs; pair++ {
				for game := 0; game < 2; game++ {
					number++
					tour.games <- &Game{
						Config: match.Config{
							Players: [2]strategy.Config{
								tour.player(p1, number),
								tour.player(p2, number),
							},
							MaxRetries: tour.Config.MaxRetries,
						},

						Round:  round + 1,
						Number: number,

						Player1: p1,
						Player2: p2,
					}

					// Switch sides.
					p1, p2 = p2, p1
				}
			}
		}
	}
}

// player returns the config of the given player for the given game.
// Seeded players get a different seed in every game so that their games
// are reproducible without all being the same.
func (tour *Tournament) player(index, game int) strategy.Config {
	config := tour.Config.Players[index]
	if config.Seed != 0 {
		config.Seed += uint64(game)
	}

	return config
}

func (tour *Tournament) Thread() {
	for game := range tour.games {
		if err := tour.RunGame(game); err != nil {
			logrus.Error(err)
			tour.errOnce.Do(func() { tour.err = err })
		}
	}
}

type Game struct {
	match.Config

	Round, Number    int
	Player1, Player2 int
}

func (tour *Tournament) RunGame(game *Game) error {
	logrus.Infof(
		"\x1b[33mStarting\x1b[0m Round #%d Game #%d: %s vs %s\n",
		game.Round,
		game.Number,
		game.Players[0].Name,
		game.Players[1].Name,
	)

	outcome, err := match.Run(&game.Config)
	if err != nil {
		// the game can't be played at all, so it's scored as a draw
		tour.results <- Result{Game: game, Outcome: match.Outcome{Result: match.Draw, Reason: err.Error()}}
		return fmt.Errorf("game #%d: %w", game.Number, err)
	}

	tour.results <- Result{Game: game, Outcome: outcome}

	if tour.Config.History != "" {
		path := filepath.Join(
			tour.Config.History,
			fmt.Sprintf("round-%d-game-%d%s", game.Round, game.Number, history.Extension),
		)

		if err := history.Save(path, outcome.Board.History()); err != nil {
			return fmt.Errorf("game #%d: %w", game.Number, err)
		}
	}

	return nil
}

func (tour *Tournament) ResultHandler(s *spinner.Spinner, total int) {
	for result := range tour.results {
		tour.Games++

		switch result.Outcome.Result {
		case match.Player1Wins:
			tour.Scores[result.Game.Player1].Wins++
			tour.Scores[result.Game.Player2].Losses++

		case match.Player2Wins:
			tour.Scores[result.Game.Player2].Wins++
			tour.Scores[result.Game.Player1].Losses++

		case match.Draw:
			tour.Scores[result.Game.Player1].Draws++
			tour.Scores[result.Game.Player2].Draws++
		}

		s.Lock()
		s.Suffix = fmt.Sprintf(" %d/%d games", tour.Games, total)
		s.Unlock()

		logrus.Infof(
			"\x1b[32mFinished\x1b[0m Round #%d Game #%d: %s vs %s: %s\n",
			result.Game.Round,
			result.Game.Number,
			result.Game.Players[0].Name,
			result.Game.Players[1].Name,
			result,
		)

		if tour.Games%ReportInterval == 0 && tour.Games != total {
			tour.Report()
		}
	}
}

func (tour *Tournament) spinner() *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(tour.Output))

	file, ok := tour.Output.(*os.File)
	if !ok || !isatty.IsTerminal(file.Fd()) {
		s.Disable()
	}

	return s
}

type Result struct {
	Game    *Game
	Outcome match.Outcome
}

func (result Result) String() string {
	switch result.Outcome.Result {
	case match.Player1Wins:
		return fmt.Sprintf("%s wins by %s", result.Game.Players[0].Name, result.Outcome.Reason)
	case match.Player2Wins:
		return fmt.Sprintf("%s wins by %s", result.Game.Players[1].Name, result.Outcome.Reason)
	case match.Draw:
		return fmt.Sprintf("Draw by %s", result.Outcome.Reason)
	}

	return "illegal result"
}

// Standing is a player's score in a tournament along with its estimated
// strength relative to the other players.
type Standing struct {
	Name string
	Score

	Elo, Error float64
}

// Standings are in the order the players were configured in.
type Standings []Standing

func (tour *Tournament) Standings() Standings {
	standings := make(Standings, len(tour.Config.Players))
	for i, player := range tour.Config.Players {
		score := tour.Scores[i]
		lower, elo, upper := stats.Elo(score.Wins, score.Draws, score.Losses)

		standings[i] = Standing{
			Name:  player.Name,
			Score: score,
			Elo:   elo,
			Error: stats.Error(lower, elo, upper),
		}
	}

	return standings
}

func (tour *Tournament) Report() {
	out := tour.Output
	fmt.Fprintln(out, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(out, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(out, "╠══════════════════════════════════════════════════════════╣")
	for i, standing := range tour.Standings() {
		format := "║ %2d. %-15.15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n"
		if tour.Config.Scheduler == SchedulerGauntlet && i == 0 {
			if standing.Elo >= 0 {
				format = "║ \x1b[32m%2d. %-15.15s   %+4.0f %4.0f   %4d %4d %4d   %5d\x1b[0m ║\n"
			} else {
				format = "║ \x1b[31m%2d. %-15.15s   %+4.0f %4.0f   %4d %4d %4d   %5d\x1b[0m ║\n"
			}
		}

		fmt.Fprintf(
			out,
			format,
			i+1, standing.Name,
			standing.Elo, standing.Error,
			standing.Wins, standing.Losses, standing.Draws,
			standing.Total())
	}
	fmt.Fprintln(out, "╚══════════════════════════════════════════════════════════╝")
}
