package models

// Direction is one of the four compass directions.
type Direction int

const (
	North Direction = iota + 1
	South
	East
	West
)

// directions maps every accepted token, full names and WASD aliases, to its
// direction.
var directions = map[string]Direction{
	"north": North,
	"w":     North,
	"south": South,
	"s":     South,
	"east":  East,
	"d":     East,
	"west":  West,
	"a":     West,
}

// ParseDirection resolves a direction token. Matching is case-sensitive.
func ParseDirection(token string) (Direction, bool) {
	d, ok := directions[token]
	return d, ok
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "nowhere"
}

// Delta is the position offset of a single step in d.
func (d Direction) Delta() Position {
	switch d {
	case North:
		return Position{X: 0, Y: -1}
	case South:
		return Position{X: 0, Y: 1}
	case East:
		return Position{X: 1, Y: 0}
	case West:
		return Position{X: -1, Y: 0}
	}
	return Position{}
}

// CanStep reports whether a step in d from pos stays on the grid.
func (g *Grid) CanStep(d Direction, pos Position) bool {
	switch d {
	case North:
		return pos.Y > 0
	case South:
		return pos.Y+1 < g.Height
	case East:
		return pos.X+1 < g.Width
	case West:
		return pos.X > 0
	}
	return true
}

// CanMove reports whether moving by the direction token from pos stays on
// the grid. Tokens that name no direction are allowed.
func CanMove(token string, pos Position, g *Grid) bool {
	d, ok := ParseDirection(token)
	if !ok {
		return true
	}
	return g.CanStep(d, pos)
}
