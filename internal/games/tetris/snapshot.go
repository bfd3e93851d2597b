package tetris

// Phase is the controller's state-machine phase.
type Phase string

const (
	PhaseRunning     Phase = "running"
	PhasePaused      Phase = "paused"
	PhaseGameOver    Phase = "game_over"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the complete observable game state, used for
// determinism tests and debugging.
type Snapshot struct {
	Tick      uint64
	Score     int
	Lines     int
	PieceType PieceType
	PieceCol  int
	PieceRow  int
	Rotation  int
	Phase     Phase
}

// Snapshot returns the current state capture.
func (g *Game) Snapshot() Snapshot {
	phase := PhaseRunning
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.gameOver:
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	snap := Snapshot{
		Tick:  g.tick,
		Score: g.score,
		Lines: g.lines,
		Phase: phase,
	}

	if g.piece != nil {
		snap.PieceType = g.piece.Type
		snap.PieceCol = g.piece.Col
		snap.PieceRow = g.piece.Row
		snap.Rotation = g.piece.Rotation
	}

	return snap
}
