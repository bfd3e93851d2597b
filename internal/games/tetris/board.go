package tetris

// Board dimensions are fixed: the standard well.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Board is the grid of locked cells. Each cell holds the type tag of the
// piece that locked there, or PieceNone. The invariant: a cell is PieceNone
// if and only if no locked piece occupies it. Only Lock and ClearFullLines
// mutate the grid.
type Board struct {
	cells [BoardHeight][BoardWidth]PieceType
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// InsideBounds reports whether (col, row) is a valid board coordinate.
func (b *Board) InsideBounds(col, row int) bool {
	return col >= 0 && col < BoardWidth && row >= 0 && row < BoardHeight
}

// CellEmpty reports whether the cell at (col, row) holds no locked piece.
// Coordinates must be in bounds; callers check InsideBounds first.
func (b *Board) CellEmpty(col, row int) bool {
	return b.cells[row][col] == PieceNone
}

// Cell returns the type tag locked at (col, row), or PieceNone.
func (b *Board) Cell(col, row int) PieceType {
	if !b.InsideBounds(col, row) {
		return PieceNone
	}
	return b.cells[row][col]
}

// CanPlace reports whether every occupied cell of the piece is both in
// bounds and empty. This is the single authority for movement and rotation
// legality: all piece mutations are applied speculatively, checked here,
// and reverted on failure.
func (b *Board) CanPlace(p *Piece) bool {
	for _, cell := range p.Cells() {
		if !b.InsideBounds(cell.Col, cell.Row) {
			return false
		}
		if !b.CellEmpty(cell.Col, cell.Row) {
			return false
		}
	}
	return true
}

// Lock writes the piece's type tag into every cell it covers. The caller
// guarantees CanPlace holds for the final resting position; Lock does not
// re-validate so the piece can be locked at the exact pre-collision spot.
func (b *Board) Lock(p *Piece) {
	for _, cell := range p.Cells() {
		b.cells[cell.Row][cell.Col] = p.Type
	}
}

// ClearFullLines removes every fully occupied row in one atomic pass and
// returns how many were cleared. Remaining rows keep their relative order
// and shift down by the number of cleared rows above them; that many empty
// rows appear at the top. Up to four simultaneous rows clear in a single
// call; a row-by-row delete would skip rows as indexes shift.
func (b *Board) ClearFullLines() int {
	// Compact surviving rows to the bottom, scanning bottom-up.
	write := BoardHeight - 1
	for read := BoardHeight - 1; read >= 0; read-- {
		if b.rowFull(read) {
			continue
		}
		b.cells[write] = b.cells[read]
		write--
	}

	cleared := write + 1
	for row := 0; row <= write; row++ {
		b.cells[row] = [BoardWidth]PieceType{}
	}
	return cleared
}

func (b *Board) rowFull(row int) bool {
	for col := 0; col < BoardWidth; col++ {
		if b.cells[row][col] == PieceNone {
			return false
		}
	}
	return true
}

// TopOut reports whether any cell of the topmost row is occupied. Checked
// once per lock event, immediately after ClearFullLines.
func (b *Board) TopOut() bool {
	for col := 0; col < BoardWidth; col++ {
		if b.cells[0][col] != PieceNone {
			return true
		}
	}
	return false
}
