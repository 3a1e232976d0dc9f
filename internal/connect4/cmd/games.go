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

	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/pkg/common"
	"laptudirm.com/x/connect4/pkg/history"
)

func Games() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "Lists the saved games",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := history.List(common.HistoryDirectory)
			if err != nil {
				return err
			}

			if len(names) == 0 {
				fmt.Println("\x1b[31mNo Games Saved.\x1b[0m")
				return nil
			}

			fmt.Println("\x1b[32mSaved Games\x1b[0m:")
			fmt.Println()
			for _, name := range names {
				snapshots, err := history.Load(history.Path(name))
				if err != nil {
					fmt.Printf("- \x1b[34m%-20s\x1b[0m \x1b[31mcorrupted\x1b[0m\n", name)
					continue
				}

				fmt.Printf("- \x1b[34m%-20s\x1b[0m %d moves\n", name, len(snapshots))
			}

			return nil
		},
	}
}

func Remove() *cobra.Command {
	return &cobra.Command{
		Use:   "remove game",
		Short: "Delete the given saved game",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			path := history.Path(args[0])
			if err := os.Remove(path); err != nil {
				return err
			}

			fmt.Printf("\x1b[32mRemoved Game:\x1b[0m %s\n", args[0])
			return nil
		},
	}
}
