package game

import (
	"fmt"
	"math/rand"
)

// StepListener receives one call for every state-changing action on the
// board: each revealed cell (including cascade-induced reveals) and each
// mark toggle, in the order the mutations happen. Listeners are invoked
// synchronously and must not call back into the board.
type StepListener func(cellID string, wasMark bool)

// Board owns an 8-connected grid of cells, the mine layout, and the
// flood-fill algorithm used for cascading reveals. Cells are never shared
// outside the board.
type Board struct {
	rows, cols int
	mines      int
	cells      [][]Cell

	algorithm Algorithm
	gameOver  bool

	listener StepListener
}

// New builds a fresh board: labels and links the cells, places mines at
// distinct uniformly-random positions, and computes every safe cell's
// adjacent-mine count. Fails with ErrInvalidDimensions when rows or cols
// fall outside [3, 10] or mines exceed the cell count.
func New(rows, cols, mines int, algorithm Algorithm) (*Board, error) {
	if rows < MinRows || rows > MaxRows || cols < MinCols || cols > MaxCols || mines > rows*cols {
		return nil, fmt.Errorf("%w: %dx%d board with %d mines", ErrInvalidDimensions, rows, cols, mines)
	}

	board := &Board{
		rows:      rows,
		cols:      cols,
		mines:     mines,
		algorithm: algorithm,
		cells:     make([][]Cell, rows),
	}

	for r := 0; r < rows; r++ {
		board.cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			cell := &board.cells[r][c]
			cell.id = cellID(r, c)
			cell.row, cell.col = r, c
		}
	}

	board.linkNeighbors()
	board.placeMines()
	board.countMinesAround()

	return board, nil
}

// linkNeighbors wires every cell to each in-bounds cell among its 8
// surrounding offsets. The neighbor sets are fixed from here on.
func (board *Board) linkNeighbors() {
	for r := 0; r < board.rows; r++ {
		for c := 0; c < board.cols; c++ {
			cell := &board.cells[r][c]
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					cell.addNeighbor(board.CellAt(r+dr, c+dc))
				}
			}
		}
	}
}

// placeMines drops mines at distinct positions by rejection sampling:
// redraw whenever the picked cell is already mined.
func (board *Board) placeMines() {
	placed := 0
	for placed < board.mines {
		r, c := rand.Intn(board.rows), rand.Intn(board.cols)
		cell := &board.cells[r][c]
		if cell.hasMine {
			continue
		}
		cell.hasMine = true
		placed++
	}
}

// countMinesAround scans each safe cell's neighbor set for mines. Mined
// cells keep the zero default.
func (board *Board) countMinesAround() {
	for r := 0; r < board.rows; r++ {
		for c := 0; c < board.cols; c++ {
			cell := &board.cells[r][c]
			if cell.hasMine {
				continue
			}
			count := 0
			for _, neighbor := range cell.neighbors {
				if neighbor.hasMine {
					count++
				}
			}
			cell.minesAround = count
		}
	}
}

// CellAt returns the cell at (r, c), or nil when out of bounds.
func (board *Board) CellAt(r, c int) *Cell {
	if r < 0 || r >= board.rows || c < 0 || c >= board.cols {
		return nil
	}
	return &board.cells[r][c]
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumMines() int {
	return board.mines
}

func (board *Board) Algorithm() Algorithm {
	return board.algorithm
}

// SetAlgorithm switches the cascade strategy for subsequent reveals.
// Already-revealed state is unaffected.
func (board *Board) SetAlgorithm(algorithm Algorithm) {
	board.algorithm = algorithm
}

func (board *Board) IsGameOver() bool {
	return board.gameOver
}

// SetStepListener registers the single listener notified of every reveal
// and mark mutation.
func (board *Board) SetStepListener(listener StepListener) {
	board.listener = listener
}

func (board *Board) emitStep(cell *Cell, wasMark bool) {
	if board.listener != nil {
		board.listener(cell.id, wasMark)
	}
}

// RevealCell reveals the cell at (r, c) and returns false exactly when a
// mine was hit. Out-of-bounds coordinates, marked cells, and
// already-revealed cells are silent no-ops reporting true, so cascades
// may pass neighbor coordinates without bounds-checking. Revealing a cell
// with no adjacent mines starts the configured flood fill.
func (board *Board) RevealCell(r, c int) bool {
	cell := board.CellAt(r, c)
	if cell == nil {
		return true
	}
	if cell.marked || cell.revealed {
		return true
	}

	cell.reveal()
	board.emitStep(cell, false)

	if cell.hasMine {
		board.gameOver = true
		return false
	}
	if cell.minesAround == 0 {
		switch board.algorithm {
		case DFS:
			board.floodDFS(r, c)
		case BFS:
			board.floodBFS(cell)
		}
	}
	return true
}

// ToggleMark flips the mark on an unrevealed cell and reports it as a
// mark step. Revealed or out-of-bounds cells are silent no-ops.
func (board *Board) ToggleMark(r, c int) {
	cell := board.CellAt(r, c)
	if cell == nil || cell.revealed {
		return
	}
	cell.setMarked(!cell.marked)
	board.emitStep(cell, true)
}

func (board *Board) CellHasMine(r, c int) bool {
	cell := board.CellAt(r, c)
	return cell != nil && cell.hasMine
}

func (board *Board) CellIsRevealed(r, c int) bool {
	cell := board.CellAt(r, c)
	return cell != nil && cell.revealed
}

func (board *Board) CellIsMarked(r, c int) bool {
	cell := board.CellAt(r, c)
	return cell != nil && cell.marked
}

// CellValue returns the adjacent-mine count at (r, c).
func (board *Board) CellValue(r, c int) int {
	if cell := board.CellAt(r, c); cell != nil {
		return cell.minesAround
	}
	return 0
}

// CheckVictory reports whether every safe cell has been revealed. Mined
// cells may stay unrevealed or marked without blocking victory. Pure
// query, no side effects.
func (board *Board) CheckVictory() bool {
	for r := 0; r < board.rows; r++ {
		for c := 0; c < board.cols; c++ {
			cell := &board.cells[r][c]
			if !cell.hasMine && !cell.revealed {
				return false
			}
		}
	}
	return true
}
