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

package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/history"
	"laptudirm.com/x/connect4/pkg/match"
	"laptudirm.com/x/connect4/pkg/render"
	"laptudirm.com/x/connect4/pkg/strategy"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a single game of connect-four",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play plays a single game between the two given players,
			drawing the board after every move.

			Players are given as kind[:depth], where kind is one of
			random, heuristic, minimax, or human. The depth is only
			used by minimax players, and defaults to 6. Human players
			type the column of their moves on the terminal.

			Games can be saved with --save and watched again later
			with the replay command.`),
		Example: heredoc.Doc(`
			connect4 play
			connect4 play --p1 minimax:4 --p2 heuristic --save first-game`),

		RunE: func(cmd *cobra.Command, args []string) error {
			var players [2]strategy.Config
			for i, flag := range []string{"p1", "p2"} {
				var err error
				if players[i], err = strategy.ParseConfig(cmd.Flag(flag).Value.String()); err != nil {
					return err
				}
			}

			maxRetries, _ := cmd.Flags().GetInt("max-retries")
			noClear, _ := cmd.Flags().GetBool("no-clear")

			renderer := render.New(os.Stdout, !color.NoColor)
			draw := func(b *board.Board) {
				if !noClear {
					renderer.Clear()
				}
				_ = renderer.Board(b)
			}

			draw(board.New())
			outcome, err := match.Run(&match.Config{
				Players:    players,
				MaxRetries: maxRetries,
				Observer: func(b *board.Board, player board.Player, column int) {
					draw(b)
					fmt.Printf("%s played column %d\n", player, column)
				},
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n\x1b[32mGame Over\x1b[0m: %s\n", outcome)

			if name := cmd.Flag("save").Value.String(); name != "" {
				path := history.Path(name)
				if err := history.Save(path, outcome.Board.History()); err != nil {
					return err
				}

				fmt.Printf("Saved game to \x1b[33m%s\x1b[0m\n", path)
			}

			return nil
		},
	}

	cmd.Flags().String("p1", strategy.KindHuman, "The player moving first")
	cmd.Flags().String("p2", fmt.Sprintf("%s:%d", strategy.KindMinimax, strategy.DefaultDepth), "The player moving second")
	cmd.Flags().StringP("save", "s", "", "Save the game's history with the given name")
	cmd.Flags().Bool("no-clear", false, "Don't clear the screen between moves")
	cmd.Flags().Int("max-retries", match.DefaultMaxRetries, "Illegal moves in a row before a player forfeits")

	return cmd
}
