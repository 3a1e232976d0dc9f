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

// Package history reads and writes the positions of a game as text.
//
// Every position is written as a block of board.Rows lines, top row first,
// each line holding board.Columns comma separated cell values: 0 for an
// empty cell and 1 or 2 for the players' tokens. Blocks are separated by
// a single blank line:
//
//	0,0,0,0,0,0,0
//	0,0,0,0,0,0,0
//	0,0,0,0,0,0,0
//	0,0,0,0,0,0,0
//	0,0,0,0,0,0,0
//	0,0,0,1,0,0,0
//
//	0,0,0,0,0,0,0
//	...
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/common"
	"laptudirm.com/x/connect4/pkg/internal/util"
)

// Extension is the file extension of saved games.
const Extension = ".c4"

var ErrMalformed = errors.New("history: malformed snapshot")

// Encode writes the given positions to w. Every block, including the
// last one, is followed by a blank line.
func Encode(w io.Writer, snapshots []board.Grid) error {
	writer := bufio.NewWriter(w)
	for _, grid := range snapshots {
		if _, err := writer.WriteString(grid.String() + "\n"); err != nil {
			return err
		}
	}

	return writer.Flush()
}

// Decode reads positions written by Encode. The final blank line may be
// missing and lines may end in "\r\n".
func Decode(r io.Reader) ([]board.Grid, error) {
	var (
		snapshots []board.Grid
		grid      board.Grid
		row       int // row of grid filled by the next line
		number    int // line number, for error messages
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		number++
		line := strings.TrimRight(scanner.Text(), "\r")

		if line == "" {
			switch row {
			case 0:
				// blank line between blocks or at the end of the file
				continue
			case board.Rows:
				snapshots = append(snapshots, grid)
				grid, row = board.Grid{}, 0
				continue
			default:
				return nil, fmt.Errorf("%w: line %d: block has %d rows, want %d", ErrMalformed, number, row, board.Rows)
			}
		}

		if row == board.Rows {
			return nil, fmt.Errorf("%w: line %d: block has more than %d rows", ErrMalformed, number, board.Rows)
		}

		if err := parseRow(line, &grid[row]); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, number, err)
		}

		row++
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	switch row {
	case 0:
	case board.Rows:
		snapshots = append(snapshots, grid)
	default:
		return nil, fmt.Errorf("%w: line %d: block has %d rows, want %d", ErrMalformed, number, row, board.Rows)
	}

	return snapshots, nil
}

func parseRow(line string, row *[board.Columns]board.Player) error {
	values := strings.Split(line, ",")
	if len(values) != board.Columns {
		return fmt.Errorf("%d values, want %d", len(values), board.Columns)
	}

	for col, value := range values {
		cell, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("column %d: %q is not a number", col, value)
		}

		if cell < int(board.Empty) || cell > int(board.Player2) {
			return fmt.Errorf("column %d: invalid cell %d", col, cell)
		}

		row[col] = board.Player(cell)
	}

	return nil
}

// Save writes the positions to the given file, creating it if necessary.
func Save(path string, snapshots []board.Grid) error {
	if err := common.TryMkdir(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, common.FilePermissions)
	if err != nil {
		return err
	}

	if err := Encode(file, snapshots); err != nil {
		_ = file.Close()
		return err
	}

	logrus.WithFields(logrus.Fields{
		"file":      path,
		"snapshots": len(snapshots),
	}).Debug("Saved game history")

	return file.Close()
}

// Load reads the positions stored in the given file.
func Load(path string) ([]board.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	snapshots, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return snapshots, nil
}

// Path returns the location of the saved game with the given name. Names
// which are already paths, i.e. contain a separator or the extension, are
// returned unchanged.
func Path(name string) string {
	if strings.ContainsRune(name, filepath.Separator) || filepath.Ext(name) == Extension {
		return name
	}

	return filepath.Join(common.HistoryDirectory, name+Extension)
}

// List returns the names of the games saved in the given directory, in
// natural order. A missing directory has no games.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}

		names = append(names, strings.TrimSuffix(entry.Name(), Extension))
	}

	slices.SortFunc(names, util.AlphanumCompare)
	return names, nil
}
