package snake

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the 180-degree reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Velocity is the per-tick step vector. Exactly one component is non-zero
// and its magnitude is always the board unit size.
type Velocity struct {
	DX, DY int
}

// velocity returns the step vector for one tick at the given unit size.
func (d Direction) velocity(unit int) Velocity {
	switch d {
	case DirUp:
		return Velocity{DX: 0, DY: -unit}
	case DirDown:
		return Velocity{DX: 0, DY: unit}
	case DirLeft:
		return Velocity{DX: -unit, DY: 0}
	default:
		return Velocity{DX: unit, DY: 0}
	}
}
