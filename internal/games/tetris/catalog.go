package tetris

import (
	"math/rand"

	"github.com/ansokolov/blockcade/internal/core"
)

// PieceType identifies one of the seven canonical tetrominoes. The zero
// value doubles as the empty-cell tag on the board.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// pieceTypes lists every spawnable type, for uniform random selection.
var pieceTypes = [...]PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// String returns the conventional one-letter name.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "."
	}
}

// Color returns the display color associated with the type.
func (t PieceType) Color() core.Color {
	switch t {
	case PieceI:
		return core.ColorCyan
	case PieceO:
		return core.ColorBrightYellow
	case PieceT:
		return core.ColorMagenta
	case PieceS:
		return core.ColorGreen
	case PieceZ:
		return core.ColorRed
	case PieceJ:
		return core.ColorBlue
	case PieceL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// baseShapes holds the immutable base rotation matrix for each type, in its
// minimal bounding box. The I piece is deliberately 1x4: transpose+reverse
// turns it into the 4x1 vertical state and back, which is exactly the two
// orientations the classic piece has.
var baseShapes = map[PieceType][][]bool{
	PieceI: {
		{true, true, true, true},
	},
	PieceO: {
		{true, true},
		{true, true},
	},
	PieceT: {
		{false, true, false},
		{true, true, true},
	},
	PieceS: {
		{false, true, true},
		{true, true, false},
	},
	PieceZ: {
		{true, true, false},
		{false, true, true},
	},
	PieceJ: {
		{true, false, false},
		{true, true, true},
	},
	PieceL: {
		{false, false, true},
		{true, true, true},
	},
}

// NewPiece creates a piece of the given type at the fixed spawn origin:
// horizontally centered, anchored to the top row. The base matrix is
// deep-copied so in-place rotation never mutates the catalog.
func NewPiece(t PieceType) *Piece {
	base := baseShapes[t]
	shape := make([][]bool, len(base))
	for i, row := range base {
		shape[i] = make([]bool, len(row))
		copy(shape[i], row)
	}

	return &Piece{
		Type:  t,
		Shape: shape,
		Col:   (BoardWidth - len(shape[0])) / 2,
		Row:   0,
	}
}

// NewRandomPiece selects a type uniformly at random and spawns it.
func NewRandomPiece(rng *rand.Rand) *Piece {
	return NewPiece(pieceTypes[rng.Intn(len(pieceTypes))])
}
