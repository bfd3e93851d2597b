package snake

// Phase is the game's observable state.
type Phase string

const (
	PhaseRunning     Phase = "running"
	PhasePaused      Phase = "paused"
	PhaseGameOver    Phase = "game_over"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the complete observable game state for determinism
// testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	Length    int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	MoveEvery int
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

	head := Point{}
	if len(g.snake) > 0 {
		head = g.snake[0]
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Length:    len(g.snake),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       g.dir,
		FoodX:     g.food.X,
		FoodY:     g.food.Y,
		MoveEvery: g.moveEvery,
		Phase:     phase,
	}
}
