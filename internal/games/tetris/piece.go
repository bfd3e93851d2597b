package tetris

// Point is an absolute board coordinate.
type Point struct {
	Col, Row int
}

// Piece is the currently falling tetromino: a rotatable shape matrix
// anchored to the board by its top-left cell. A Piece never validates its
// own position; legality is the Board's job, and the controller applies
// mutations speculatively and reverts on failure.
type Piece struct {
	Type     PieceType
	Shape    [][]bool // Rows of occupancy flags, top to bottom
	Col, Row int      // Board position of Shape[0][0]
	Rotation int      // Quarter-turns applied, mod 4; informational
}

// RotateCW replaces the shape matrix with its clockwise quarter-turn:
// transpose, then reverse each row. This is correct for any rectangular
// matrix, so the 1x4 I piece flips between horizontal and vertical.
// Four applications are the identity, which is also the intended revert
// mechanism for an illegal rotation: rotate three more times instead of
// implementing a counter-clockwise transform.
func (p *Piece) RotateCW() {
	rows := len(p.Shape)
	cols := len(p.Shape[0])

	rotated := make([][]bool, cols)
	for r := range rotated {
		rotated[r] = make([]bool, rows)
		for c := range rotated[r] {
			// Cell (r, c) of the rotated matrix comes from
			// (rows-1-c, r) of the original.
			rotated[r][c] = p.Shape[rows-1-c][r]
		}
	}

	p.Shape = rotated
	p.Rotation = (p.Rotation + 1) % 4
}

// Cells returns the absolute board coordinates currently covered by the
// piece. Recomputed on every call; position and shape mutate too often
// for caching to pay off.
func (p *Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for r, row := range p.Shape {
		for c, occupied := range row {
			if occupied {
				cells = append(cells, Point{Col: p.Col + c, Row: p.Row + r})
			}
		}
	}
	return cells
}

// Translate shifts the piece's origin. No validation.
func (p *Piece) Translate(dCol, dRow int) {
	p.Col += dCol
	p.Row += dRow
}
