package game

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSerializeFormat(t *testing.T) {
	board := testBoard(t, 3, 3, DFS, [2]int{2, 2})

	// The on-disk contract: header, then one line per cell in row-major
	// order, booleans as literal true/false.
	want := "3,3,1,DFS\n" +
		"A1,0,0,false,false,false,0\n" +
		"B1,0,1,false,false,false,0\n" +
		"C1,0,2,false,false,false,0\n" +
		"A2,1,0,false,false,false,0\n" +
		"B2,1,1,false,false,false,1\n" +
		"C2,1,2,false,false,false,1\n" +
		"A3,2,0,false,false,false,0\n" +
		"B3,2,1,false,false,false,1\n" +
		"C3,2,2,true,false,false,0\n"
	if got := board.Serialize(); got != want {
		t.Errorf("Serialize() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	board := testBoard(t, 4, 4, BFS, [2]int{3, 3}, [2]int{0, 3})
	board.ToggleMark(3, 3)
	board.RevealCell(1, 0)

	restored, err := Deserialize(board.Serialize())
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if restored.Rows() != 4 || restored.Cols() != 4 || restored.NumMines() != 2 {
		t.Errorf("restored board is %dx%d with %d mines, want 4x4 with 2",
			restored.Rows(), restored.Cols(), restored.NumMines())
	}
	if restored.Algorithm() != BFS {
		t.Errorf("restored algorithm = %q, want BFS", restored.Algorithm())
	}
	if restored.IsGameOver() {
		t.Error("restored board is game over")
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if restored.CellHasMine(r, c) != board.CellHasMine(r, c) ||
				restored.CellIsRevealed(r, c) != board.CellIsRevealed(r, c) ||
				restored.CellIsMarked(r, c) != board.CellIsMarked(r, c) ||
				restored.CellValue(r, c) != board.CellValue(r, c) {
				t.Errorf("cell (%d, %d) state differs after round trip", r, c)
			}
		}
	}
	if restored.Serialize() != board.Serialize() {
		t.Error("round-tripped serialization differs")
	}
}

func TestRoundTripGameOver(t *testing.T) {
	board := testBoard(t, 3, 3, DFS, [2]int{0, 0})
	if board.RevealCell(0, 0) {
		t.Fatal("RevealCell on a mine returned true")
	}

	restored, err := Deserialize(board.Serialize())
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !restored.IsGameOver() {
		t.Error("gameOver not recomputed from a revealed mine")
	}
}

func TestDeserializeKeyedByCoordinates(t *testing.T) {
	board := testBoard(t, 3, 3, DFS, [2]int{2, 2})
	board.RevealCell(0, 1)

	// Cell lines carry explicit (row, col) fields; shuffling them must
	// not change the restored board.
	lines := strings.SplitAfter(board.Serialize(), "\n")
	lines[1], lines[8] = lines[8], lines[1]
	lines[3], lines[6] = lines[6], lines[3]

	restored, err := Deserialize(strings.Join(lines, ""))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if restored.Serialize() != board.Serialize() {
		t.Error("line order changed the restored board")
	}
}

func TestDeserializeMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"header too short", "3,3,1\n"},
		{"header not numeric", "x,3,1,DFS\n"},
		{"cell line too short", "3,3,0,DFS\nA1,0,0,false\n"},
		{"cell line bad bool", "3,3,0,DFS\nA1,0,0,maybe,false,false,0\n"},
		{"cell line bad count", "3,3,0,DFS\nA1,0,0,false,false,false,x\n"},
		{"cell out of bounds", "3,3,0,DFS\nZ9,8,8,false,false,false,0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Deserialize(tc.in); !errors.Is(err, ErrMalformedSnapshot) {
				t.Errorf("Deserialize(%q) error = %v, want ErrMalformedSnapshot", tc.in, err)
			}
		})
	}
}

func TestDeserializeInvalidHeaderDimensions(t *testing.T) {
	if _, err := Deserialize("2,3,0,DFS\n"); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Deserialize error = %v, want ErrInvalidDimensions", err)
	}
}

func TestSaveLoad(t *testing.T) {
	board := testBoard(t, 3, 3, BFS, [2]int{2, 2})
	board.ToggleMark(2, 2)
	board.RevealCell(0, 0)

	path := filepath.Join(t.TempDir(), "game.csv")
	if err := board.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Serialize() != board.Serialize() {
		t.Error("loaded board differs from saved board")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Load of a missing file did not fail")
	}
}

func TestLoadRecomputesGameOver(t *testing.T) {
	in := "3,3,1,BFS\n" +
		"A1,0,0,false,true,false,0\n" +
		"B1,0,1,false,true,false,0\n" +
		"C1,0,2,false,true,false,0\n" +
		"A2,1,0,false,true,false,0\n" +
		"B2,1,1,false,true,false,1\n" +
		"C2,1,2,false,true,false,1\n" +
		"A3,2,0,false,true,false,0\n" +
		"B3,2,1,false,true,false,1\n" +
		"C3,2,2,true,true,false,0\n"

	path := filepath.Join(t.TempDir(), "lost.csv")
	if err := os.WriteFile(path, []byte(in), 0644); err != nil {
		t.Fatal(err)
	}
	board, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !board.IsGameOver() {
		t.Error("IsGameOver() = false for a snapshot with a revealed mine")
	}
}
