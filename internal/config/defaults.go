package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultTetrisConfig returns the hardcoded Tetris defaults, used as the
// last-resort fallback if even the embedded YAML fails to parse.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: TetrisGravity{
			BaseDropMs:      500,
			SoftDropDivisor: 10,
		},
		Scoring: TetrisScoring{
			PointsPerLine: 100,
		},
	}
}

// DefaultSnakeConfig returns the hardcoded Snake defaults.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		MoveEveryTicks: 8,
		SpeedUpEvery:   5,
		MinMoveTicks:   3,
	}
}
