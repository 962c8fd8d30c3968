package game

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
}

// Serialize encodes the full board state as text: one header line with
// the board parameters, then one comma-separated line per cell in
// row-major order. The layout is the on-disk contract and must stay
// byte-stable:
//
//	rows,cols,mines,algorithm
//	id,row,col,hasMine,revealed,marked,minesAround
//	...
func (board *Board) Serialize() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d,%d,%d,%s\n", board.rows, board.cols, board.mines, board.algorithm)
	for r := 0; r < board.rows; r++ {
		for c := 0; c < board.cols; c++ {
			cell := &board.cells[r][c]
			fmt.Fprintf(&sb, "%s,%d,%d,%t,%t,%t,%d\n",
				cell.id, cell.row, cell.col,
				cell.hasMine, cell.revealed, cell.marked, cell.minesAround)
		}
	}
	return sb.String()
}

// Deserialize restores a board from its serialized form. The header
// constructs a fresh board (rebuilding the adjacency graph and
// randomizing a throwaway mine layout); each data line then overwrites
// the cell it names by its explicit (row, col) fields, so line order is
// irrelevant. gameOver is recomputed from the restored state.
func Deserialize(in string) (*Board, error) {
	scanner := bufio.NewScanner(strings.NewReader(in))
	if !scanner.Scan() || scanner.Text() == "" {
		return nil, fmt.Errorf("%w: empty snapshot", ErrMalformedSnapshot)
	}

	header := strings.Split(scanner.Text(), ",")
	if len(header) != 4 {
		return nil, fmt.Errorf("%w: header %q", ErrMalformedSnapshot, scanner.Text())
	}
	rows, errR := strconv.Atoi(header[0])
	cols, errC := strconv.Atoi(header[1])
	mines, errM := strconv.Atoi(header[2])
	if errR != nil || errC != nil || errM != nil {
		return nil, fmt.Errorf("%w: header %q", ErrMalformedSnapshot, scanner.Text())
	}

	board, err := New(rows, cols, mines, Algorithm(header[3]))
	if err != nil {
		return nil, err
	}

	for scanner.Scan() {
		if err := board.restoreCell(scanner.Text()); err != nil {
			return nil, err
		}
	}

	board.gameOver = false
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := &board.cells[r][c]
			if cell.hasMine && cell.revealed {
				board.gameOver = true
			}
		}
	}
	return board, nil
}

// restoreCell applies one serialized cell line to the board.
func (board *Board) restoreCell(line string) error {
	tokens := strings.Split(line, ",")
	if len(tokens) != 7 {
		return fmt.Errorf("%w: line %q", ErrMalformedSnapshot, line)
	}

	r, errR := strconv.Atoi(tokens[1])
	c, errC := strconv.Atoi(tokens[2])
	hasMine, errM := strconv.ParseBool(tokens[3])
	revealed, errV := strconv.ParseBool(tokens[4])
	marked, errK := strconv.ParseBool(tokens[5])
	minesAround, errN := strconv.Atoi(tokens[6])
	if errR != nil || errC != nil || errM != nil || errV != nil || errK != nil || errN != nil {
		return fmt.Errorf("%w: line %q", ErrMalformedSnapshot, line)
	}

	cell := board.CellAt(r, c)
	if cell == nil {
		return fmt.Errorf("%w: cell (%d, %d) out of bounds", ErrMalformedSnapshot, r, c)
	}

	cell.hasMine = hasMine
	if revealed {
		cell.reveal()
	}
	cell.setMarked(marked)
	cell.minesAround = minesAround
	return nil
}

// Save writes the snapshot to path, creating or truncating the file.
func (board *Board) Save(path string) error {
	if err := os.WriteFile(path, []byte(board.Serialize()), 0644); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	log.WithFields(logrus.Fields{
		"path": path,
		"rows": board.rows,
		"cols": board.cols,
	}).Info("snapshot saved")
	return nil
}

// Load reads a snapshot file and restores the board it describes.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	board, err := Deserialize(string(data))
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"path":      path,
		"rows":      board.rows,
		"cols":      board.cols,
		"mines":     board.mines,
		"algorithm": board.algorithm,
	}).Info("snapshot loaded")
	return board, nil
}
