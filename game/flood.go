package game

import (
	"github.com/gammazero/deque"

	"minegraph/util/collections"
)

// floodDFS cascades reveals depth-first from (r, c). The visited set is
// scoped to this single invocation. Marked cells act as walls: they are
// recorded as visited but never revealed, and the traversal does not pass
// through them.
func (board *Board) floodDFS(r, c int) {
	visited := make(collections.Set[*Cell])
	board.floodDFSFrom(r, c, visited)
}

func (board *Board) floodDFSFrom(r, c int, visited collections.Set[*Cell]) {
	cell := board.CellAt(r, c)
	if cell == nil || visited.Contains(cell) {
		return
	}
	visited.Add(cell)

	if cell.marked {
		return
	}
	if !cell.revealed {
		cell.reveal()
		board.emitStep(cell, false)
	}
	if cell.minesAround != 0 {
		return
	}
	for _, neighbor := range cell.neighbors {
		board.floodDFSFrom(neighbor.row, neighbor.col, visited)
	}
}

// floodBFS cascades reveals breadth-first from the origin cell, which the
// caller has already revealed. There is deliberately no visited set: a
// cell is revealed before the enqueue decision, so the revealed guard
// alone stops re-enqueueing and each cell is emitted at most once.
func (board *Board) floodBFS(origin *Cell) {
	var queue deque.Deque[*Cell]
	queue.PushBack(origin)

	for queue.Len() > 0 {
		current := queue.PopFront()
		for _, neighbor := range current.neighbors {
			if neighbor.revealed || neighbor.marked {
				continue
			}
			neighbor.reveal()
			board.emitStep(neighbor, false)
			if neighbor.minesAround == 0 {
				queue.PushBack(neighbor)
			}
		}
	}
}
