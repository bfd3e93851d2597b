package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	cfg, err := LoadTetris("/nonexistent/tetris.yaml")
	if err == nil {
		t.Error("a missing custom config should report an error")
	}

	// The returned config must still be playable.
	def := DefaultTetrisConfig()
	if cfg.Gravity.BaseDropMs != def.Gravity.BaseDropMs {
		t.Errorf("BaseDropMs = %d, expected default %d", cfg.Gravity.BaseDropMs, def.Gravity.BaseDropMs)
	}
	if cfg.Gravity.SoftDropDivisor != def.Gravity.SoftDropDivisor {
		t.Errorf("SoftDropDivisor = %d, expected default %d", cfg.Gravity.SoftDropDivisor, def.Gravity.SoftDropDivisor)
	}
	if cfg.Scoring.PointsPerLine != def.Scoring.PointsPerLine {
		t.Errorf("PointsPerLine = %d, expected default %d", cfg.Scoring.PointsPerLine, def.Scoring.PointsPerLine)
	}
}

func TestLoadTetrisUnparsableCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("gravity: [not a mapping"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err == nil {
		t.Error("an unparsable custom config should report an error")
	}
	if cfg.Gravity.BaseDropMs <= 0 || cfg.Gravity.SoftDropDivisor <= 0 {
		t.Errorf("error return left zero-value gravity timing: %+v", cfg.Gravity)
	}
}

func TestLoadTetrisPartialConfigFilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("gravity:\n  base_drop_ms: 250\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Gravity.BaseDropMs != 250 {
		t.Errorf("BaseDropMs = %d, expected the file's 250", cfg.Gravity.BaseDropMs)
	}
	if cfg.Gravity.SoftDropDivisor != DefaultTetrisConfig().Gravity.SoftDropDivisor {
		t.Errorf("unset SoftDropDivisor should fall back, got %d", cfg.Gravity.SoftDropDivisor)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	cfg, err := LoadSnake("/nonexistent/snake.yaml")
	if err == nil {
		t.Error("a missing custom config should report an error")
	}

	def := DefaultSnakeConfig()
	if cfg.MoveEveryTicks != def.MoveEveryTicks {
		t.Errorf("MoveEveryTicks = %d, expected default %d", cfg.MoveEveryTicks, def.MoveEveryTicks)
	}
	if cfg.MinMoveTicks != def.MinMoveTicks {
		t.Errorf("MinMoveTicks = %d, expected default %d", cfg.MinMoveTicks, def.MinMoveTicks)
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Gravity.BaseDropMs <= 0 || cfg.Scoring.PointsPerLine <= 0 {
		t.Errorf("embedded defaults produced zero values: %+v", cfg)
	}

	scfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if scfg.MoveEveryTicks <= 0 {
		t.Errorf("embedded defaults produced zero values: %+v", scfg)
	}
}
