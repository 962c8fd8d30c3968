package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"minegraph/game"
	"minegraph/trace"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
}

var (
	rows      int
	cols      int
	mines     int
	algorithm game.Algorithm

	configPath string
	loadPath   string
	saveDir    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "minegraph",
	Short: "Play mine-detection on an 8-connected cell grid",
	Long: `minegraph is a grid-based mine-detection game whose empty regions are
cleared by a flood fill over the cell adjacency graph, using either
depth-first or breadth-first traversal.

Start a fresh board
	minegraph --rows 8 --cols 8 --mines 10

Resume a saved game
	minegraph --load game.csv

Every reveal and mark step is recorded; the "trace" command inside the
play loop prints the traversal history as a Graphviz digraph.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		if configPath != "" {
			if err := applyConfig(cmd, configPath); err != nil {
				return err
			}
		}

		var board *game.Board
		var err error
		if loadPath != "" {
			board, err = game.Load(loadPath)
		} else {
			board, err = game.New(rows, cols, mines, algorithm)
		}
		if err != nil {
			return err
		}

		recorder := trace.NewRecorder()
		board.SetStepListener(func(cellID string, wasMark bool) {
			log.WithFields(logrus.Fields{
				"cell": cellID,
				"mark": wasMark,
			}).Debug("step")
			recorder.AddStep(cellID, wasMark)
		})

		log.WithFields(logrus.Fields{
			"rows":      board.Rows(),
			"cols":      board.Cols(),
			"mines":     board.NumMines(),
			"algorithm": board.Algorithm(),
		}).Info("board ready")

		play(board, recorder)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type algorithmValue game.Algorithm

func newAlgorithmValue(val game.Algorithm, p *game.Algorithm) *algorithmValue {
	*p = val
	return (*algorithmValue)(p)
}

func (algVal *algorithmValue) String() string {
	return string(*algVal)
}

func (algVal *algorithmValue) Set(value string) error {
	switch strings.ToUpper(value) {
	case string(game.DFS):
		*algVal = algorithmValue(game.DFS)
	case string(game.BFS):
		*algVal = algorithmValue(game.BFS)
	default:
		return fmt.Errorf("invalid algorithm (expected DFS or BFS)")
	}
	return nil
}

func (algVal *algorithmValue) Type() string {
	return "game.Algorithm"
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --rows
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&rows, "rows", "h", 8, "Height of the board, in cells (3-10)")
	rootCmd.Flags().IntVarP(&cols, "cols", "w", 8, "Width of the board, in cells (3-10)")
	rootCmd.Flags().IntVarP(&mines, "mines", "m", 10, "Number of mines to place in the board")
	rootCmd.Flags().Var(newAlgorithmValue(game.DFS, &algorithm), "algorithm", `Flood-fill traversal used for cascading reveals.
DFS: recursive depth-first
BFS: queue-based breadth-first`)
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file supplying default board settings")
	rootCmd.Flags().StringVarP(&loadPath, "load", "l", "", "Snapshot file to resume from")
	rootCmd.Flags().StringVarP(&saveDir, "save-dir", "s", "", "Directory to write a final snapshot into when the game ends")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every step as it happens")
}
