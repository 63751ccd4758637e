package world

import "github.com/mlange-42/ark/ecs"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// mooreDirs is the Moore neighborhood in its fixed enumeration order. The
// order matters: the occupant give-way rule and offspring placement take the
// first empty neighbor, and reordering would change reproducible runs.
var mooreDirs = [8]Point{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, 1}, {-1, 1}, {1, -1},
}

// Grid is a dense width x height table mapping cells to their occupant
// entity. The zero entity marks an empty cell. Callers never pass
// out-of-range coordinates; neighbor enumeration pre-filters to bounds.
type Grid struct {
	width  int
	height int
	cells  []ecs.Entity
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]ecs.Entity, width*height),
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the occupant of (x,y), or the zero entity for an empty cell.
func (g *Grid) At(x, y int) ecs.Entity {
	return g.cells[y*g.width+x]
}

// Set places e at (x,y). Pass the zero entity to clear the cell.
func (g *Grid) Set(x, y int, e ecs.Entity) {
	g.cells[y*g.width+x] = e
}

// Empty reports whether (x,y) holds no agent.
func (g *Grid) Empty(x, y int) bool {
	return g.cells[y*g.width+x] == (ecs.Entity{})
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ecs.Entity{}
	}
}

// Neighbors appends the in-bounds Moore neighbors of (x,y) to buf and
// returns it. The enumeration order is fixed and deterministic.
func (g *Grid) Neighbors(x, y int, buf []Point) []Point {
	for _, d := range mooreDirs {
		nx, ny := x+d.X, y+d.Y
		if g.InBounds(nx, ny) {
			buf = append(buf, Point{nx, ny})
		}
	}
	return buf
}

// FirstEmptyNeighbor returns the first empty in-bounds Moore neighbor of
// (x,y) in enumeration order, or ok=false when every neighbor is occupied.
func (g *Grid) FirstEmptyNeighbor(x, y int) (Point, bool) {
	for _, d := range mooreDirs {
		nx, ny := x+d.X, y+d.Y
		if g.InBounds(nx, ny) && g.Empty(nx, ny) {
			return Point{nx, ny}, true
		}
	}
	return Point{}, false
}
