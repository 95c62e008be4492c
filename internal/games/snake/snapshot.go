package snake

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	DX       int
	DY       int
	FoodX    int
	FoodY    int
	Running  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.segments[0]
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.segments),
		HeadX:    head.X,
		HeadY:    head.Y,
		DX:       g.vel.DX,
		DY:       g.vel.DY,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		Running:  g.running,
	}
}
