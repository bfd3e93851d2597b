package snake

import (
	"testing"

	"github.com/ansokolov/blockcade/internal/config"
	"github.com/ansokolov/blockcade/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(4242)
		input := core.NewInputFrame()
		for i := 0; i < 300; i++ {
			input.Clear()
			if i == 30 {
				input.Set(core.ActionDown)
			}
			if i == 60 {
				input.Set(core.ActionLeft)
			}
			g.Step(input)
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", a, b)
	}
}

func TestNoInstantReversal(t *testing.T) {
	g := newTestGame(1)

	if g.dir != DirRight {
		t.Fatalf("initial direction should be right, got %v", g.dir)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.nextDir == DirLeft {
		t.Error("reversal from right to left must be rejected")
	}

	input.Clear()
	input.Set(core.ActionDown)
	g.Step(input)

	if g.nextDir != DirDown {
		t.Errorf("perpendicular turn should buffer, nextDir = %v", g.nextDir)
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := newTestGame(2)

	g.snake = []Point{{X: fieldW - 1, Y: 5}, {X: fieldW - 2, Y: 5}}
	g.dir = DirRight
	g.nextDir = DirRight

	g.advance()

	if !g.gameOver {
		t.Error("moving through the border should end the game")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(3)

	g.snake = []Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.dir = DirRight
	g.nextDir = DirRight

	g.advance()

	if !g.gameOver {
		t.Error("moving into the body should end the game")
	}
}

func TestTailCellIsSafe(t *testing.T) {
	g := newTestGame(4)

	// Head chases the tail into the cell the tail is vacating this move
	g.snake = []Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
	}
	g.dir = DirRight
	g.nextDir = DirRight
	g.food = Point{X: -1, Y: -1}

	g.advance()

	if g.gameOver {
		t.Error("moving into the vacating tail cell must be legal")
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := newTestGame(5)

	lengthBefore := len(g.snake)
	g.food = Point{X: g.snake[0].X + 1, Y: g.snake[0].Y}
	g.dir = DirRight
	g.nextDir = DirRight

	g.advance()

	if g.score != 1 {
		t.Errorf("score = %d, expected 1 after eating", g.score)
	}
	if len(g.snake) != lengthBefore+1 {
		t.Errorf("length = %d, expected %d after eating", len(g.snake), lengthBefore+1)
	}
}

func TestFoodNeverSpawnsOnSnake(t *testing.T) {
	g := newTestGame(6)

	for i := 0; i < 200; i++ {
		g.spawnFood()
		if g.snakeAt(g.food) {
			t.Fatalf("food spawned on the snake at (%d, %d)", g.food.X, g.food.Y)
		}
		if g.food.X < 0 || g.food.X >= fieldW || g.food.Y < 0 || g.food.Y >= fieldH {
			t.Fatalf("food out of bounds at (%d, %d)", g.food.X, g.food.Y)
		}
	}
}

func TestSpeedUp(t *testing.T) {
	g := newTestGame(7)
	initial := g.moveEvery

	// Eat SpeedUpEvery food items in a row
	for i := 0; i < g.cfg.SpeedUpEvery; i++ {
		g.food = Point{X: g.snake[0].X + 1, Y: g.snake[0].Y}
		g.dir = DirRight
		g.nextDir = DirRight
		g.advance()
	}

	if g.moveEvery >= initial {
		t.Errorf("moveEvery = %d, expected faster than initial %d", g.moveEvery, initial)
	}
	if g.moveEvery < g.cfg.MinMoveTicks {
		t.Errorf("moveEvery = %d, below the configured minimum %d", g.moveEvery, g.cfg.MinMoveTicks)
	}
}

func TestBrokenConfigPathKeepsDefaultTiming(t *testing.T) {
	SetConfigPath("/nonexistent/snake.yaml")
	defer SetConfigPath("")

	g := newTestGame(10)

	def := config.DefaultSnakeConfig()
	if g.moveEvery != def.MoveEveryTicks {
		t.Fatalf("moveEvery = %d, expected default %d; config fell back to zero values", g.moveEvery, def.MoveEveryTicks)
	}

	// The snake must not advance on every single tick
	head := g.snake[0]
	g.Step(core.NewInputFrame())
	if g.snake[0] != head {
		t.Error("snake moved on the first tick; movement interval collapsed to zero")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(8)
	g.gameOver = true
	g.score = 9

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.gameOver {
		t.Error("restart should return to the running phase")
	}
	if g.score != 0 {
		t.Errorf("restart should zero the score, got %d", g.score)
	}
	if len(g.snake) != 3 {
		t.Errorf("restart should respawn the starting snake, length %d", len(g.snake))
	}
}

func TestRenderShowsHUD(t *testing.T) {
	g := newTestGame(9)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if screen.Row(0)[:6] != " Snake" {
		t.Errorf("HUD missing, row 0 = %q", screen.Row(0))
	}
}
