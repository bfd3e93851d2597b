// Package snake implements an endless snake game on a bordered field.
// It is the platform's second game and deliberately simple: the same
// fixed-tick loop as tetris with far fewer rules.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/ansokolov/blockcade/internal/config"
	"github.com/ansokolov/blockcade/internal/core"
	"github.com/ansokolov/blockcade/internal/registry"
)

// Direction of movement.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// opposite reports whether two directions cancel each other.
func opposite(a, b Direction) bool {
	return (a == DirRight && b == DirLeft) ||
		(a == DirLeft && b == DirRight) ||
		(a == DirUp && b == DirDown) ||
		(a == DirDown && b == DirUp)
}

// Point is a field coordinate, origin at the top-left inside the border.
type Point struct {
	X, Y int
}

// Fixed playfield size; the border is drawn around it.
const (
	fieldW    = 40
	fieldH    = 18
	hudHeight = 2
	requiredW = fieldW + 4
	requiredH = fieldH + hudHeight + 2
)

// Game is the snake controller.
type Game struct {
	cfg config.SnakeConfig
	rng *rand.Rand

	tick  uint64
	score int

	snake   []Point // head first
	dir     Direction
	nextDir Direction
	growing bool
	food    Point

	moveEvery  int
	moveTicker int

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

// New creates a new snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, _ = config.LoadSnake(configPath)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.moveEvery = g.cfg.MoveEveryTicks
	g.moveTicker = 0
	g.growing = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH

	startX := fieldW / 4
	startY := fieldH / 2
	g.snake = []Point{
		{X: startX + 2, Y: startY},
		{X: startX + 1, Y: startY},
		{X: startX, Y: startY},
	}
	g.dir = DirRight
	g.nextDir = DirRight

	g.spawnFood()
}

// spawnFood places food on a random cell not covered by the snake.
func (g *Game) spawnFood() {
	var empty []Point
	for y := 0; y < fieldH; y++ {
		for x := 0; x < fieldW; x++ {
			p := Point{X: x, Y: y}
			if !g.snakeAt(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		g.food = Point{X: -1, Y: -1}
		return
	}
	g.food = empty[g.rng.Intn(len(empty))]
}

func (g *Game) snakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.bufferDirection(input)

	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// bufferDirection records the requested direction for the next move,
// rejecting instant reversals.
func (g *Game) bufferDirection(input core.InputFrame) {
	want := g.nextDir
	switch {
	case input.Has(core.ActionUp):
		want = DirUp
	case input.Has(core.ActionDown):
		want = DirDown
	case input.Has(core.ActionLeft):
		want = DirLeft
	case input.Has(core.ActionRight):
		want = DirRight
	}
	if !opposite(want, g.dir) {
		g.nextDir = want
	}
}

// advance moves the snake one cell, handling food, growth and collisions.
func (g *Game) advance() {
	g.dir = g.nextDir

	head := g.snake[0]
	switch g.dir {
	case DirRight:
		head.X++
	case DirLeft:
		head.X--
	case DirUp:
		head.Y--
	case DirDown:
		head.Y++
	}

	// Border collision
	if head.X < 0 || head.X >= fieldW || head.Y < 0 || head.Y >= fieldH {
		g.gameOver = true
		return
	}

	// Self collision; the tail cell is about to vacate unless growing
	checkLen := len(g.snake)
	if !g.growing {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == head {
			g.gameOver = true
			return
		}
	}

	g.snake = append([]Point{head}, g.snake...)

	if head == g.food {
		g.score++
		g.growing = true
		g.spawnFood()
		if g.cfg.SpeedUpEvery > 0 && g.score%g.cfg.SpeedUpEvery == 0 {
			g.moveEvery = max(g.cfg.MinMoveTicks, g.moveEvery-1)
		}
	}

	if g.growing {
		g.growing = false
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// Resize records the new window size and re-runs the playability check
// without restarting; the field is fixed-size.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < requiredW || height < requiredH
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the HUD, the bordered field, the snake and the food.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake | Score: %d  Speed: %d", g.score, g.cfg.MoveEveryTicks-g.moveEvery+1)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	offsetX := (dst.Width() - fieldW - 2) / 2
	offsetY := hudHeight

	dst.DrawBox(offsetX, offsetY, fieldW+2, fieldH+2)

	if g.food.X >= 0 {
		dst.SetColored(offsetX+1+g.food.X, offsetY+1+g.food.Y, '*', core.ColorBrightRed)
	}

	for i, seg := range g.snake {
		r := 'o'
		if i == 0 {
			r = 'O'
		}
		dst.SetColored(offsetX+1+seg.X, offsetY+1+seg.Y, r, core.ColorBrightGreen)
	}

	switch {
	case g.gameOver:
		dst.DrawTextCentered(dst.Height()/2, "Game Over - Press R to restart")
	case g.paused:
		dst.DrawTextCentered(dst.Height()/2, "Paused")
	}
}
