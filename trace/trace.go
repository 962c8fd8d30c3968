// Package trace records the ordered history of reveal/mark steps a board
// reports through its step listener, and renders it as a Graphviz graph.
package trace

import (
	"fmt"
	"strings"
)

// Step is a single recorded action: the cell it touched, whether it was a
// mark (as opposed to a reveal), and its position in the sequence.
type Step struct {
	CellID string
	Mark   bool
	Seq    int
}

// Edge connects the cells of two consecutive steps.
type Edge struct {
	From, To string
}

// Recorder accumulates steps in the order the board emits them. Register
// Recorder.AddStep as the board's step listener.
type Recorder struct {
	steps []Step
	edges []Edge

	lastCellID string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// AddStep records one action. Each step after the first is chained to its
// predecessor with an edge, mirroring the order the reveal engine touched
// the cells.
func (rec *Recorder) AddStep(cellID string, wasMark bool) {
	step := Step{CellID: cellID, Mark: wasMark, Seq: len(rec.steps)}
	rec.steps = append(rec.steps, step)

	if rec.lastCellID != "" {
		rec.edges = append(rec.edges, Edge{From: rec.lastCellID, To: cellID})
	}
	rec.lastCellID = cellID
}

// Steps returns the recorded steps in emission order.
func (rec *Recorder) Steps() []Step {
	return rec.steps
}

// Edges returns the step-chaining edges in emission order.
func (rec *Recorder) Edges() []Edge {
	return rec.edges
}

func (rec *Recorder) Len() int {
	return len(rec.steps)
}

// DOT renders the history as a Graphviz digraph. A cell touched more than
// once keeps the style and step number of its last touch: marked cells
// are red, revealed ones green.
func (rec *Recorder) DOT() string {
	lastTouch := make(map[string]Step)
	for _, step := range rec.steps {
		lastTouch[step.CellID] = step
	}

	var sb strings.Builder
	sb.WriteString("digraph traversal {\n")
	for _, step := range rec.steps {
		if lastTouch[step.CellID].Seq != step.Seq {
			continue
		}
		color := "green"
		if step.Mark {
			color = "red"
		}
		fmt.Fprintf(&sb, "  %q [label=\"%s (%d)\", color=%s];\n",
			step.CellID, step.CellID, step.Seq, color)
	}
	for _, edge := range rec.edges {
		fmt.Fprintf(&sb, "  %q -> %q;\n", edge.From, edge.To)
	}
	sb.WriteString("}\n")
	return sb.String()
}
