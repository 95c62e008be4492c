package snake

import (
	"strings"
	"testing"

	"snaketui/internal/config"
	"snaketui/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(config.Default())
	g.Reset(seed)
	return g
}

func TestInitialConfiguration(t *testing.T) {
	g := newTestGame(42)

	want := []Point{{100, 0}, {75, 0}, {50, 0}, {25, 0}, {0, 0}}
	got := g.Segments()
	if len(got) != len(want) {
		t.Fatalf("Initial snake length = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d = %v, expected %v", i, got[i], want[i])
		}
	}

	if g.Velocity() != (Velocity{DX: 25, DY: 0}) {
		t.Errorf("Initial velocity = %v, expected (25,0)", g.Velocity())
	}
	if g.Score() != 0 {
		t.Errorf("Initial score = %d, expected 0", g.Score())
	}
	if !g.Running() {
		t.Error("New game should be running")
	}
}

func TestTickMovesWithoutGrowth(t *testing.T) {
	g := newTestGame(42)
	g.food = Point{X: 475, Y: 475} // Away from the snake's path

	g.Tick()

	want := []Point{{125, 0}, {100, 0}, {75, 0}, {50, 0}, {25, 0}}
	got := g.Segments()
	if len(got) != len(want) {
		t.Fatalf("Snake length after tick = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d = %v, expected %v", i, got[i], want[i])
		}
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, expected 0", g.Score())
	}
	if !g.Running() {
		t.Error("Game should still be running")
	}
}

func TestTickGrowsOnConsumption(t *testing.T) {
	g := newTestGame(42)
	g.food = Point{X: 125, Y: 0} // Directly in front of the head

	g.Tick()

	want := []Point{{125, 0}, {100, 0}, {75, 0}, {50, 0}, {25, 0}, {0, 0}}
	got := g.Segments()
	if len(got) != 6 {
		t.Fatalf("Snake length after eating = %d, expected 6", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d = %v, expected %v", i, got[i], want[i])
		}
	}
	if g.Score() != 1 {
		t.Errorf("Score after eating = %d, expected 1", g.Score())
	}

	// New food was generated: aligned and in bounds
	f := g.Food()
	if f.X%25 != 0 || f.Y%25 != 0 {
		t.Errorf("New food (%d,%d) is not unit aligned", f.X, f.Y)
	}
	if f.X < 0 || f.X > 475 || f.Y < 0 || f.Y > 475 {
		t.Errorf("New food (%d,%d) is out of bounds", f.X, f.Y)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(42)

	// Moving right; left is the exact reverse and must be ignored
	g.SetDirection(DirLeft)
	if g.Velocity() != (Velocity{DX: 25, DY: 0}) {
		t.Errorf("Reversal should be a no-op, velocity = %v", g.Velocity())
	}

	// A perpendicular turn applies immediately
	g.SetDirection(DirUp)
	if g.Velocity() != (Velocity{DX: 0, DY: -25}) {
		t.Errorf("Velocity after up = %v, expected (0,-25)", g.Velocity())
	}

	// Now down is the reverse and must be ignored
	g.SetDirection(DirDown)
	if g.Velocity() != (Velocity{DX: 0, DY: -25}) {
		t.Errorf("Reversal should be a no-op, velocity = %v", g.Velocity())
	}
}

func TestMostRecentDirectionWins(t *testing.T) {
	g := newTestGame(42)
	g.food = Point{X: 475, Y: 475}

	// Two valid changes between ticks; the last one decides the move
	g.SetDirection(DirDown)
	g.SetDirection(DirRight)
	g.Tick()

	if g.Head() != (Point{X: 125, Y: 0}) {
		t.Errorf("Head = %v, expected (125,0)", g.Head())
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head Point
		dir  Direction
	}{
		{"right wall", Point{475, 0}, DirRight},
		{"left wall", Point{0, 250}, DirLeft},
		{"top wall", Point{250, 0}, DirUp},
		{"bottom wall", Point{250, 475}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(42)
			g.food = Point{X: 250, Y: 250}
			g.segments = []Point{tc.head}
			g.vel = tc.dir.velocity(25)

			g.Tick()

			if g.Running() {
				t.Errorf("Game should be over after hitting the %s", tc.name)
			}
		})
	}
}

func TestRightWallScenario(t *testing.T) {
	// Head at (475,0) on a 500-wide board, moving right: the head moves to
	// (500,0) first, then the boundary check fires.
	g := newTestGame(42)
	g.food = Point{X: 250, Y: 250}
	g.segments = []Point{{475, 0}, {450, 0}, {425, 0}}

	g.Tick()

	if g.Running() {
		t.Fatal("Game should be over at the right wall")
	}
	if g.Head() != (Point{X: 500, Y: 0}) {
		t.Errorf("Head = %v, expected (500,0): movement happens before the check", g.Head())
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(42)
	g.food = Point{X: 475, Y: 475}

	// A hook shape: moving right puts the head onto its own body
	g.segments = []Point{
		{125, 125}, // Head
		{125, 150},
		{150, 150},
		{150, 125},
		{150, 100},
	}
	g.vel = DirRight.velocity(25)

	g.Tick()

	if g.Running() {
		t.Error("Game should be over after self collision")
	}
}

func TestTailCellIsNotACollision(t *testing.T) {
	// Moving into the cell the tail just vacated is legal: the tail is
	// removed in the same tick, before the collision check sees it.
	g := newTestGame(42)
	g.food = Point{X: 475, Y: 475}

	// A 2x2 loop: head moving up re-enters the old tail cell
	g.segments = []Point{
		{100, 125}, // Head
		{125, 125},
		{125, 100},
		{100, 100},
	}
	g.vel = DirUp.velocity(25)

	g.Tick()

	if !g.Running() {
		t.Error("Chasing the tail should not end the game")
	}
	if g.Head() != (Point{X: 100, Y: 100}) {
		t.Errorf("Head = %v, expected (100,100)", g.Head())
	}
}

func TestGameOverTickIsNoOp(t *testing.T) {
	g := newTestGame(42)
	g.segments = []Point{{475, 0}}
	g.food = Point{X: 250, Y: 250}
	g.Tick() // Hits the wall

	if g.Running() {
		t.Fatal("Setup should end the game")
	}

	before := g.Snapshot()
	g.Tick()
	g.Tick()
	after := g.Snapshot()

	if before != after {
		t.Errorf("Tick after game over mutated state: %+v vs %+v", before, after)
	}
}

func TestDirectionInputAfterGameOverIsHarmless(t *testing.T) {
	g := newTestGame(42)
	g.segments = []Point{{475, 0}}
	g.food = Point{X: 250, Y: 250}
	g.Tick()

	g.SetDirection(DirDown)
	g.Tick()

	if g.Running() {
		t.Error("Direction input must not revive a finished game")
	}
}

func TestMinimumLengthInvariant(t *testing.T) {
	cfg := config.Default()
	cfg.Snake.InitialLength = 1
	g := New(cfg)
	g.Reset(7)

	for i := 0; i < 1000; i++ {
		g.Tick()
		if len(g.Segments()) < 1 {
			t.Fatalf("Snake emptied at tick %d", i)
		}
		if !g.Running() {
			break
		}
	}
}

func TestResetRestoresInitialConfiguration(t *testing.T) {
	g := newTestGame(42)

	// Play a bit and crash
	g.SetDirection(DirDown)
	for g.Running() {
		g.Tick()
	}

	g.Reset(42)

	fresh := newTestGame(42)
	if g.Snapshot() != fresh.Snapshot() {
		t.Errorf("Reset state = %+v, expected %+v", g.Snapshot(), fresh.Snapshot())
	}
	if !g.Running() {
		t.Error("Reset game should be running")
	}
}

func TestFoodPlacement(t *testing.T) {
	g := newTestGame(999)

	for i := 0; i < 200; i++ {
		f := g.placeFood()
		if f.X%25 != 0 || f.Y%25 != 0 {
			t.Errorf("Food (%d,%d) is not aligned to the unit grid", f.X, f.Y)
		}
		if f.X < 0 || f.X > 475 || f.Y < 0 || f.Y > 475 {
			t.Errorf("Food (%d,%d) is outside [0,475]", f.X, f.Y)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 100; i++ {
		if i == 20 {
			g1.SetDirection(DirDown)
			g2.SetDirection(DirDown)
		}
		if i == 40 {
			g1.SetDirection(DirLeft)
			g2.SetDirection(DirLeft)
		}
		g1.Tick()
		g2.Tick()
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Same seed and inputs diverged: %+v vs %+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestGrowthAccounting(t *testing.T) {
	// Length grows by exactly one per consumption, else stays unchanged.
	g := newTestGame(3)
	for i := 0; i < 200 && g.Running(); i++ {
		lenBefore := len(g.Segments())
		scoreBefore := g.Score()
		g.Tick()
		grew := len(g.Segments()) - lenBefore
		ate := g.Score() - scoreBefore
		if ate == 1 && grew != 1 {
			t.Fatalf("Tick %d: ate but grew by %d", i, grew)
		}
		if ate == 0 && grew != 0 && g.Running() {
			t.Fatalf("Tick %d: did not eat but length changed by %d", i, grew)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if d.Opposite() != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), want)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(444)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Snake") {
		t.Error("HUD should contain 'Snake'")
	}
	if !strings.Contains(content, "●") {
		t.Error("Frame should contain the food marker")
	}

	// Crash and render the terminal frame
	g.segments = []Point{{475, 0}}
	g.food = Point{X: 250, Y: 250}
	g.Tick()
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("Game over frame should contain the overlay text")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(333)

	screen := core.NewScreen(10, 5)
	g.Render(screen)

	if !strings.Contains(screen.String(), "small") {
		t.Error("Undersized screen should show the resize hint")
	}
}
