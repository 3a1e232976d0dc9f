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

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/pkg/history"
	"laptudirm.com/x/connect4/pkg/render"
)

func Replay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay game",
		Short: "Show every position of a saved game",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, err := history.Load(history.Path(args[0]))
			if err != nil {
				return err
			}

			if len(snapshots) == 0 {
				fmt.Println("\x1b[31mNo moves in game.\x1b[0m")
				return nil
			}

			renderer := render.New(os.Stdout, !color.NoColor)
			if final, _ := cmd.Flags().GetBool("final"); final {
				return renderer.Grid(snapshots[len(snapshots)-1])
			}

			return renderer.Replay(snapshots)
		},
	}

	cmd.Flags().BoolP("final", "f", false, "Only show the final position")

	return cmd
}
