package game

import "fmt"

// Cell is a single node of the board graph: a stable label (e.g. "A1"),
// a grid position, mine/reveal/mark state, the count of adjacent mines,
// and the Moore neighborhood it was wired to at construction.
type Cell struct {
	id       string
	row, col int

	hasMine  bool
	revealed bool
	marked   bool

	minesAround int

	neighbors []*Cell
}

// cellID derives the external identifier for a 0-based position: column
// letter first, then 1-based row ("A1" for (0,0)).
func cellID(row, col int) string {
	return fmt.Sprintf("%c%d", rune('A'+col), row+1)
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%s)", cell.id)
}

func (cell *Cell) ID() string {
	return cell.id
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) HasMine() bool {
	return cell.hasMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.revealed
}

func (cell *Cell) IsMarked() bool {
	return cell.marked
}

// MinesAround is the number of mined neighbors, fixed at construction
// (or load) time. It is never consulted for a mined cell.
func (cell *Cell) MinesAround() int {
	return cell.minesAround
}

// Neighbors returns the cell's neighbor set. The slice is owned by the
// cell; callers must not modify it.
func (cell *Cell) Neighbors() []*Cell {
	return cell.neighbors
}

// addNeighbor links another cell, skipping self-links and duplicates.
// The neighbor set is only grown during board construction.
func (cell *Cell) addNeighbor(neighbor *Cell) {
	if neighbor == nil || neighbor == cell {
		return
	}
	for _, existing := range cell.neighbors {
		if existing == neighbor {
			return
		}
	}
	cell.neighbors = append(cell.neighbors, neighbor)
}

func (cell *Cell) reveal() {
	cell.revealed = true
}

// setMarked flips the mark bit. Revealed cells cannot be marked; the
// call is then a no-op, not an error.
func (cell *Cell) setMarked(marked bool) {
	if cell.revealed {
		return
	}
	cell.marked = marked
}
