package tetris

import "testing"

func TestInsideBounds(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		col, row int
		expected bool
	}{
		{0, 0, true},
		{BoardWidth - 1, BoardHeight - 1, true},
		{-1, 0, false},
		{0, -1, false},
		{BoardWidth, 0, false},
		{0, BoardHeight, false},
	}

	for _, tc := range tests {
		if got := b.InsideBounds(tc.col, tc.row); got != tc.expected {
			t.Errorf("InsideBounds(%d, %d) = %v, expected %v", tc.col, tc.row, got, tc.expected)
		}
	}
}

func TestCanPlaceEmptyBoard(t *testing.T) {
	b := NewBoard()

	for _, pt := range pieceTypes {
		p := NewPiece(pt)
		if !b.CanPlace(p) {
			t.Errorf("%s piece should be placeable at spawn on an empty board", pt)
		}
	}
}

func TestCanPlaceRejectsOutOfBounds(t *testing.T) {
	b := NewBoard()

	p := NewPiece(PieceO)
	p.Col = -1
	if b.CanPlace(p) {
		t.Error("piece past the left wall should be rejected")
	}

	p = NewPiece(PieceO)
	p.Col = BoardWidth - 1 // O is 2 wide, right column would be off-board
	if b.CanPlace(p) {
		t.Error("piece past the right wall should be rejected")
	}

	p = NewPiece(PieceO)
	p.Row = BoardHeight - 1 // bottom row would be off-board
	if b.CanPlace(p) {
		t.Error("piece past the floor should be rejected")
	}
}

func TestCanPlaceRejectsOverlap(t *testing.T) {
	b := NewBoard()
	b.cells[1][4] = PieceT // inside the O spawn footprint

	p := NewPiece(PieceO) // spawns at cols 4-5, rows 0-1
	if b.CanPlace(p) {
		t.Error("piece overlapping a locked cell should be rejected")
	}
}

func TestLockWritesTypeTags(t *testing.T) {
	b := NewBoard()
	p := NewPiece(PieceO)
	p.Row = BoardHeight - 2

	b.Lock(p)

	for _, cell := range p.Cells() {
		if b.Cell(cell.Col, cell.Row) != PieceO {
			t.Errorf("cell (%d, %d) should hold the O tag after Lock", cell.Col, cell.Row)
		}
	}

	// Cells outside the footprint stay empty
	if b.Cell(0, 0) != PieceNone {
		t.Error("Lock must only write the piece's own cells")
	}
}

func TestClearFullLinesIdempotentOnPartialBoard(t *testing.T) {
	b := NewBoard()

	// Partially fill a few rows, none full
	b.cells[19][0] = PieceI
	b.cells[19][3] = PieceT
	b.cells[18][7] = PieceL
	b.cells[10][5] = PieceS

	before := b.cells

	if n := b.ClearFullLines(); n != 0 {
		t.Errorf("ClearFullLines() on a board with no full rows = %d, expected 0", n)
	}

	if b.cells != before {
		t.Error("ClearFullLines() with no full rows must leave the grid unchanged")
	}
}

func fillRow(b *Board, row int, tag PieceType) {
	for col := 0; col < BoardWidth; col++ {
		b.cells[row][col] = tag
	}
}

func TestClearFullLinesMultiRow(t *testing.T) {
	b := NewBoard()

	// Rows 5, 6, 7 fully occupied, everything else partial
	fillRow(b, 5, PieceI)
	fillRow(b, 6, PieceJ)
	fillRow(b, 7, PieceL)

	// Partial rows above the cleared band: must shift down by 3
	b.cells[2][1] = PieceT
	b.cells[3][8] = PieceS
	// Partial row below the band: must not move
	b.cells[12][4] = PieceZ

	if n := b.ClearFullLines(); n != 3 {
		t.Fatalf("ClearFullLines() = %d, expected 3", n)
	}

	// Three empty rows inserted at the top
	for row := 0; row < 3; row++ {
		for col := 0; col < BoardWidth; col++ {
			if b.cells[row][col] != PieceNone {
				t.Errorf("row %d should be empty after clear, cell %d = %v", row, col, b.cells[row][col])
			}
		}
	}

	// Rows above the band shifted down by 3, order and contents intact
	if b.cells[5][1] != PieceT {
		t.Error("cell (1, 2) should have shifted to (1, 5)")
	}
	if b.cells[6][8] != PieceS {
		t.Error("cell (8, 3) should have shifted to (8, 6)")
	}

	// Row below the band unchanged
	if b.cells[12][4] != PieceZ {
		t.Error("rows below the cleared band must not move")
	}
}

func TestClearFullLinesTetris(t *testing.T) {
	b := NewBoard()

	for row := 16; row < 20; row++ {
		fillRow(b, row, PieceI)
	}

	if n := b.ClearFullLines(); n != 4 {
		t.Errorf("four simultaneous full rows should clear in one call, got %d", n)
	}

	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			if b.cells[row][col] != PieceNone {
				t.Fatalf("board should be empty after clearing all full rows")
			}
		}
	}
}

func TestTopOut(t *testing.T) {
	b := NewBoard()

	if b.TopOut() {
		t.Error("empty board should not report top-out")
	}

	// Filling lower rows does not top out
	fillRow(b, 19, PieceI)
	b.cells[1][0] = PieceT
	if b.TopOut() {
		t.Error("occupied rows below row 0 should not report top-out")
	}

	b.cells[0][9] = PieceL
	if !b.TopOut() {
		t.Error("any occupied cell in row 0 should report top-out")
	}
}
