package game

// Algorithm selects the flood-fill strategy used when a reveal lands on a
// cell with no adjacent mines.
type Algorithm string

const (
	DFS Algorithm = "DFS"
	BFS Algorithm = "BFS"
)

// Board dimension bounds. Labels use a single column letter, so the upper
// bound also keeps identifiers within A..J.
const (
	MinRows = 3
	MaxRows = 10
	MinCols = 3
	MaxCols = 10
)
