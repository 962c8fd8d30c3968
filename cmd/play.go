package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"minegraph/game"
	"minegraph/trace"
)

// play runs the interactive stdin loop until the game ends or the player
// quits. Cells are addressed by their labels, e.g. "reveal A1".
func play(board *game.Board, recorder *trace.Recorder) {
	render(board)
	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "r", "reveal":
			r, c, err := parseLabel(fields[1:])
			if err != nil {
				fmt.Println(err)
				continue
			}
			if !board.RevealCell(r, c) {
				render(board)
				fmt.Println("BOOM! You hit a mine.")
				saveFinalSnapshot(board, "loss")
				return
			}
			render(board)
			if board.CheckVictory() {
				fmt.Println("All safe cells revealed. You win!")
				saveFinalSnapshot(board, "win")
				return
			}

		case "m", "mark":
			r, c, err := parseLabel(fields[1:])
			if err != nil {
				fmt.Println(err)
				continue
			}
			board.ToggleMark(r, c)
			render(board)

		case "a", "algorithm":
			if len(fields) < 2 {
				fmt.Println("usage: algorithm DFS|BFS")
				continue
			}
			var alg game.Algorithm
			if err := newAlgorithmValue(board.Algorithm(), &alg).Set(fields[1]); err != nil {
				fmt.Println(err)
				continue
			}
			board.SetAlgorithm(alg)
			fmt.Printf("cascade algorithm: %s\n", alg)

		case "s", "save":
			if len(fields) < 2 {
				fmt.Println("usage: save <path>")
				continue
			}
			if err := board.Save(fields[1]); err != nil {
				fmt.Println(err)
			}

		case "t", "trace":
			fmt.Print(recorder.DOT())

		case "q", "quit":
			return

		default:
			printHelp()
		}
	}
}

// parseLabel turns a cell label like "A1" into 0-based (row, col).
func parseLabel(args []string) (int, int, error) {
	if len(args) < 1 || len(args[0]) < 2 {
		return 0, 0, fmt.Errorf("expected a cell label such as A1")
	}
	label := strings.ToUpper(args[0])
	col := int(label[0] - 'A')
	row, err := strconv.Atoi(label[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("expected a cell label such as A1")
	}
	return row - 1, col, nil
}

func printHelp() {
	fmt.Println("commands: reveal <cell>, mark <cell>, algorithm DFS|BFS, save <path>, trace, quit")
}

// render prints the grid with column letters and 1-based row numbers.
// Unrevealed cells show '#', marked ones 'F', revealed mines '*', and
// revealed safe cells their adjacent-mine count ('.' for zero).
func render(board *game.Board) {
	var sb strings.Builder

	sb.WriteString("   ")
	for c := 0; c < board.Cols(); c++ {
		fmt.Fprintf(&sb, " %c", rune('A'+c))
	}
	sb.WriteByte('\n')

	for r := 0; r < board.Rows(); r++ {
		fmt.Fprintf(&sb, "%3d", r+1)
		for c := 0; c < board.Cols(); c++ {
			sb.WriteByte(' ')
			sb.WriteByte(cellGlyph(board, r, c))
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

func cellGlyph(board *game.Board, r, c int) byte {
	switch {
	case board.CellIsMarked(r, c):
		return 'F'
	case !board.CellIsRevealed(r, c):
		return '#'
	case board.CellHasMine(r, c):
		return '*'
	case board.CellValue(r, c) == 0:
		return '.'
	default:
		return byte('0' + board.CellValue(r, c))
	}
}

// saveFinalSnapshot writes a timestamped snapshot of the finished board
// into --save-dir, when one was given.
func saveFinalSnapshot(board *game.Board, outcome string) {
	if saveDir == "" {
		return
	}
	if err := os.MkdirAll(saveDir, 0777); err != nil {
		log.WithError(err).Error("could not create snapshot directory")
		return
	}
	filename := time.Now().Format("20060102_150405_") + outcome + ".csv"
	path := filepath.Join(saveDir, filename)
	if err := board.Save(path); err != nil {
		log.WithError(err).Error("could not save final snapshot")
	}
}
