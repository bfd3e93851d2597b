// Package config provides YAML-based game tuning with embedded defaults.
package config

// TetrisConfig contains all tuning knobs for the Tetris game.
type TetrisConfig struct {
	Gravity TetrisGravity `yaml:"gravity"`
	Scoring TetrisScoring `yaml:"scoring"`
}

// TetrisGravity controls fall timing.
type TetrisGravity struct {
	// BaseDropMs is the base interval between automatic one-row drops.
	BaseDropMs int `yaml:"base_drop_ms"`
	// SoftDropDivisor divides the base interval while soft drop is held.
	SoftDropDivisor int `yaml:"soft_drop_divisor"`
}

// TetrisScoring controls line-clear rewards. Scoring is linear: a clear of
// n rows awards n * PointsPerLine.
type TetrisScoring struct {
	PointsPerLine int `yaml:"points_per_line"`
}

// SnakeConfig contains all tuning knobs for the Snake game.
type SnakeConfig struct {
	// MoveEveryTicks is the starting movement interval in simulation ticks.
	MoveEveryTicks int `yaml:"move_every_ticks"`
	// SpeedUpEvery accelerates the snake after this many food items.
	SpeedUpEvery int `yaml:"speed_up_every"`
	// MinMoveTicks is the fastest allowed movement interval.
	MinMoveTicks int `yaml:"min_move_ticks"`
}
