// Package tetris implements the falling-block game: a fixed 10x20 well,
// the seven canonical tetrominoes, speculative move validation against the
// board, atomic multi-row line clears and linear scoring.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/ansokolov/blockcade/internal/config"
	"github.com/ansokolov/blockcade/internal/core"
	"github.com/ansokolov/blockcade/internal/registry"
)

// Screen space needed: the well drawn two characters per cell plus border,
// a two-line HUD on top.
const (
	cellW     = 2
	fieldW    = BoardWidth*cellW + 2
	fieldH    = BoardHeight + 2
	hudHeight = 2
	requiredW = fieldW + 2
	requiredH = fieldH + hudHeight
)

// Game is the Tetris controller. It owns the board, the active piece,
// score and phase; everything mutates synchronously inside Step, one
// fixed tick at a time.
type Game struct {
	cfg  config.TetrisConfig
	rng  *rand.Rand
	tick uint64

	board *Board
	piece *Piece

	score int
	lines int

	// Gravity accumulator. Each tick contributes msPerTick; when the
	// accumulated time reaches the effective drop interval the piece
	// descends one row. Holding soft drop divides the interval.
	dropAccumMs float64
	msPerTick   float64
	tickRate    int

	screenW  int
	screenH  int
	gameOver bool
	paused   bool
	tooSmall bool
}

var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Tetris game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the game: empty board, fresh random piece
// at the spawn origin, zero score, Running phase, zero drop accumulator.
// All of it together; there is no partial reset path.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, _ = config.LoadTetris(configPath)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.gameOver = false
	g.paused = false
	g.dropAccumMs = 0

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.msPerTick = 1000.0 / float64(g.tickRate)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH

	g.board = NewBoard()
	g.piece = NewRandomPiece(g.rng)
}

// Step advances the game by one tick. Movement and rotation are applied
// speculatively and reverted when the board rejects them, so every
// accepted mutation leaves the piece in a legal position.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.dropAccumMs += g.msPerTick

	// Horizontal movement: one discrete column per tick per flag, no
	// auto-repeat acceleration.
	if input.Has(core.ActionLeft) {
		g.tryTranslate(-1, 0)
	}
	if input.Has(core.ActionRight) {
		g.tryTranslate(1, 0)
	}

	if input.Has(core.ActionRotate) {
		g.tryRotate()
	}

	if input.Has(core.ActionHardDrop) {
		// One-shot: consume the flag so a physically held key cannot
		// drop the next piece on the very next tick.
		input.Unset(core.ActionHardDrop)
		g.hardDrop()
		return core.StepResult{State: g.State()}
	}

	interval := float64(g.cfg.Gravity.BaseDropMs)
	if input.Has(core.ActionSoftDrop) {
		interval /= float64(g.cfg.Gravity.SoftDropDivisor)
	}

	if g.dropAccumMs >= interval {
		g.dropAccumMs = 0
		g.piece.Translate(0, 1)
		if !g.board.CanPlace(g.piece) {
			g.piece.Translate(0, -1)
			g.lockAndRespawn()
		}
	}

	return core.StepResult{State: g.State()}
}

// tryTranslate shifts the piece and reverts if the new position is illegal.
func (g *Game) tryTranslate(dCol, dRow int) {
	g.piece.Translate(dCol, dRow)
	if !g.board.CanPlace(g.piece) {
		g.piece.Translate(-dCol, -dRow)
	}
}

// tryRotate rotates clockwise once; an illegal result is undone by
// rotating three more times, since four quarter-turns are the identity.
func (g *Game) tryRotate() {
	g.piece.RotateCW()
	if !g.board.CanPlace(g.piece) {
		g.piece.RotateCW()
		g.piece.RotateCW()
		g.piece.RotateCW()
	}
}

// hardDrop slides the piece down to its resting position and locks it.
func (g *Game) hardDrop() {
	for g.board.CanPlace(g.piece) {
		g.piece.Translate(0, 1)
	}
	g.piece.Translate(0, -1)
	g.lockAndRespawn()
}

// lockAndRespawn transfers the active piece to the board, resolves line
// clears and scoring, checks top-out and spawns the replacement. A newly
// spawned piece that fails placement validation ends the game immediately.
func (g *Game) lockAndRespawn() {
	g.board.Lock(g.piece)

	cleared := g.board.ClearFullLines()
	if cleared > 0 {
		g.score += cleared * g.cfg.Scoring.PointsPerLine
		g.lines += cleared
	}

	g.dropAccumMs = 0

	if g.board.TopOut() {
		g.gameOver = true
		g.piece = nil
		return
	}

	g.piece = NewRandomPiece(g.rng)
	if !g.board.CanPlace(g.piece) {
		g.gameOver = true
		g.piece = nil
	}
}

// Resize records the new window size and re-runs the playability check.
// The board, piece, score and phase survive; the well is fixed-size, so a
// resize never requires restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < requiredW || height < requiredH
}

// ActivePiece returns the falling piece, or nil after game over.
func (g *Game) ActivePiece() *Piece {
	return g.piece
}

// Board returns the locked-cell grid for observers.
func (g *Game) Board() *Board {
	return g.board
}

// Lines returns the total number of cleared rows this game.
func (g *Game) Lines() int {
	return g.lines
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the HUD, the well, the locked cells and the active piece.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Tetris | Score: %d  Lines: %d", g.score, g.lines)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offsetX := (dst.Width() - fieldW) / 2
	offsetY := hudHeight

	dst.DrawBox(offsetX, offsetY, fieldW, fieldH)

	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			x := offsetX + 1 + col*cellW
			y := offsetY + 1 + row
			if t := g.board.Cell(col, row); t != PieceNone {
				dst.SetColored(x, y, '█', t.Color())
				dst.SetColored(x+1, y, '█', t.Color())
			} else {
				dst.SetColored(x, y, '·', core.ColorGray)
				dst.Set(x+1, y, ' ')
			}
		}
	}

	if g.piece != nil && !g.gameOver {
		for _, cell := range g.piece.Cells() {
			x := offsetX + 1 + cell.Col*cellW
			y := offsetY + 1 + cell.Row
			dst.SetColored(x, y, '█', g.piece.Type.Color())
			dst.SetColored(x+1, y, '█', g.piece.Type.Color())
		}
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderOverlay draws a centered boxed message over the field.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
