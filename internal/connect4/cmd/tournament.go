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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/pkg/common"
	"laptudirm.com/x/connect4/pkg/tournament"
)

var exampleConfig = heredoc.Doc(`
	players:
	  - { name: minimax, kind: minimax, depth: 6 }
	  - { name: heuristic, kind: heuristic }
	  - { name: random, kind: random, seed: 7 }

	scheduler: round-robin # or gauntlet
	rounds: 1
	game-pairs: 50
	concurrency: 4

	# directory to save the history of every game in
	history: ""
`)

func Tournament() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament config-file",
		Short: "Run a tournament between different strategies",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`tournament runs a tournament between the players listed
			in the given YAML config file and reports their scores and
			estimated elo differences as it goes.

			Every pair of players scheduled to meet plays game-pairs
			pairs of games, switching sides between the two games of
			a pair. Use --init to create an example config file.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			if create, _ := cmd.Flags().GetBool("init"); create {
				if err := common.TryCreate(args[0], []byte(exampleConfig)); err != nil {
					return err
				}

				fmt.Printf("Wrote example config to \x1b[33m%s\x1b[0m\n", args[0])
				return nil
			}

			config, err := tournament.LoadConfig(args[0])
			if err != nil {
				return err
			}

			tour, err := tournament.NewTournament(config)
			if err != nil {
				return err
			}

			_, err = tour.Start()
			return err
		},
	}

	cmd.Flags().Bool("init", false, "Create an example config file instead, if it doesn't exist")

	return cmd
}
