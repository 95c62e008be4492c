// Package snake implements the snake game loop and state machine: velocity
// based movement on a fixed unit grid, growth on consumption, and collision
// detection against walls and the snake's own body.
package snake

import (
	"math"
	"math/rand"
	"time"

	"snaketui/internal/config"
)

// Point is a board coordinate in pixels. Segment and food coordinates are
// always multiples of the board unit size.
type Point struct {
	X, Y int
}

// Game owns the complete game state. It has exactly two states: running and
// game over. The only way out of game over is Reset.
//
// All methods must be called from a single goroutine; the Bubble Tea update
// loop gives that for free.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	tick     uint64
	segments []Point // Head at index 0; never empty
	vel      Velocity
	food     Point
	score    int
	running  bool

	best int // Stored high score, display only
}

// New creates a game with a time-based seed, ready to play.
func New(cfg config.Config) *Game {
	g := &Game{cfg: cfg}
	g.Reset(0)
	return g
}

// Reset reinitializes all state and returns to running: score 0, velocity
// rightward, the default starting snake, fresh food. Seed 0 means seed from
// the current time; any other value gives a deterministic simulation.
func (g *Game) Reset(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.score = 0
	g.running = true
	g.vel = DirRight.velocity(g.cfg.Board.Unit)
	g.initSnake()
	g.food = g.placeFood()
}

// initSnake lays the starting snake horizontally on the top row, head first:
// with 5 segments and unit 25 that is (100,0) (75,0) (50,0) (25,0) (0,0).
func (g *Game) initSnake() {
	n := g.cfg.Snake.InitialLength
	u := g.cfg.Board.Unit
	g.segments = make([]Point, n)
	for i := range g.segments {
		g.segments[i] = Point{X: (n - 1 - i) * u, Y: 0}
	}
}

// Tick advances the simulation by one step. It is a no-op once the game is
// over. The order is fixed: move, consume, collide.
func (g *Game) Tick() {
	if !g.running {
		return
	}
	g.tick++

	// Move: prepend the new head.
	head := Point{X: g.segments[0].X + g.vel.DX, Y: g.segments[0].Y + g.vel.DY}
	g.segments = append([]Point{head}, g.segments...)

	// Consume or slide: eating keeps the tail, so the snake grows by one.
	if head == g.food {
		g.score++
		g.food = g.placeFood()
	} else {
		g.segments = g.segments[:len(g.segments)-1]
	}

	// Collision check runs on the already-moved snake.
	if g.outOfBounds(head) || g.bitesItself(head) {
		g.running = false
	}
}

// SetDirection applies a direction change immediately, unless it is the
// exact reverse of the current velocity. The most recent valid call before
// a tick decides that tick's movement.
func (g *Game) SetDirection(d Direction) {
	v := d.velocity(g.cfg.Board.Unit)
	if v.DX == -g.vel.DX && v.DY == -g.vel.DY {
		return
	}
	g.vel = v
}

func (g *Game) outOfBounds(p Point) bool {
	return p.X < 0 || p.X >= g.cfg.Board.Width || p.Y < 0 || p.Y >= g.cfg.Board.Height
}

// bitesItself reports whether the head overlaps any other segment.
func (g *Game) bitesItself(head Point) bool {
	for _, seg := range g.segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// placeFood picks two independent coordinates uniformly in [0, dim-unit],
// each snapped to the nearest unit multiple. Food may land on a cell the
// snake currently occupies; that is the game's contract, not a bug.
func (g *Game) placeFood() Point {
	return Point{
		X: g.randomCoord(g.cfg.Board.Width),
		Y: g.randomCoord(g.cfg.Board.Height),
	}
}

func (g *Game) randomCoord(dim int) int {
	u := float64(g.cfg.Board.Unit)
	raw := g.rng.Float64() * float64(dim-g.cfg.Board.Unit)
	return int(math.Round(raw/u)) * g.cfg.Board.Unit
}

// Running reports whether the game still accepts ticks.
func (g *Game) Running() bool {
	return g.running
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Head returns the current head position.
func (g *Game) Head() Point {
	return g.segments[0]
}

// Segments returns a copy of the segment sequence, head first.
func (g *Game) Segments() []Point {
	out := make([]Point, len(g.segments))
	copy(out, g.segments)
	return out
}

// Food returns the current food position.
func (g *Game) Food() Point {
	return g.food
}

// Velocity returns the current step vector.
func (g *Game) Velocity() Velocity {
	return g.vel
}

// Config returns the game's configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// SetHighScore records the best stored score for HUD display.
func (g *Game) SetHighScore(best int) {
	g.best = best
}
