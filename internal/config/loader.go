package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the Tetris configuration.
// Search order: customPath -> ~/.blockcade/configs/tetris.yaml ->
// ./configs/tetris.yaml -> embedded default.
func LoadTetris(customPath string) (TetrisConfig, error) {
	var cfg TetrisConfig

	if customPath != "" {
		// Error returns still carry a fully playable config: a caller
		// that ignores the error must not end up with zero-value timing.
		data, err := os.ReadFile(customPath)
		if err != nil {
			return applyTetrisFallbacks(cfg), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return applyTetrisFallbacks(cfg), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return applyTetrisFallbacks(cfg), nil
	}

	if userPath := userConfigPath("tetris.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return applyTetrisFallbacks(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/tetris.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return applyTetrisFallbacks(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil
	}
	return applyTetrisFallbacks(cfg), nil
}

// applyTetrisFallbacks fills zero values left by partial config files.
func applyTetrisFallbacks(cfg TetrisConfig) TetrisConfig {
	def := DefaultTetrisConfig()
	if cfg.Gravity.BaseDropMs <= 0 {
		cfg.Gravity.BaseDropMs = def.Gravity.BaseDropMs
	}
	if cfg.Gravity.SoftDropDivisor <= 0 {
		cfg.Gravity.SoftDropDivisor = def.Gravity.SoftDropDivisor
	}
	if cfg.Scoring.PointsPerLine <= 0 {
		cfg.Scoring.PointsPerLine = def.Scoring.PointsPerLine
	}
	return cfg
}

// LoadSnake loads the Snake configuration with the same search order.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return applySnakeFallbacks(cfg), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return applySnakeFallbacks(cfg), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return applySnakeFallbacks(cfg), nil
	}

	if userPath := userConfigPath("snake.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return applySnakeFallbacks(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return applySnakeFallbacks(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil
	}
	return applySnakeFallbacks(cfg), nil
}

func applySnakeFallbacks(cfg SnakeConfig) SnakeConfig {
	def := DefaultSnakeConfig()
	if cfg.MoveEveryTicks <= 0 {
		cfg.MoveEveryTicks = def.MoveEveryTicks
	}
	if cfg.SpeedUpEvery <= 0 {
		cfg.SpeedUpEvery = def.SpeedUpEvery
	}
	if cfg.MinMoveTicks <= 0 {
		cfg.MinMoveTicks = def.MinMoveTicks
	}
	return cfg
}

// userConfigPath returns the per-user config file path, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockcade", "configs", filename)
}
