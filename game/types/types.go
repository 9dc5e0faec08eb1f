package types

// Point is a cell on the grid. X grows to the right, Y grows downwards.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns a grid with tileCount cells on each side.
func NewSquareGrid(tileCount int) Grid {
	return Grid{Width: tileCount, Height: tileCount}
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is a cardinal heading
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Directions lists the four headings in clockwise order starting from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// ToPoint converts a Direction to its unit displacement
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the heading pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// TurnLeft returns the heading after a 90 degree counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the heading after a 90 degree clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}
