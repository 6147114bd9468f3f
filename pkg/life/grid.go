package life

// Size is the fixed width and height of the LED grid.
const Size = 5

// Matrix holds one 0/1 value per cell, indexed [y][x].
type Matrix [Size][Size]uint8

// Source supplies the independent coin flips used by Randomize.
type Source interface {
	Bool() bool
}

// Grid implements Conway's Game of Life on a fixed 5x5 board.
type Grid struct {
	cur   Matrix
	edges Edges
}

// NewGrid returns an empty grid using the given edge policy.
func NewGrid(edges Edges) *Grid {
	return &Grid{edges: edges}
}

// Edges returns the neighbour policy applied at the border.
func (g *Grid) Edges() Edges { return g.edges }

// Cells returns a copy of the current generation.
func (g *Grid) Cells() Matrix { return g.cur }

// Load replaces the current generation. Non-zero values count as alive.
func (g *Grid) Load(m Matrix) {
	for y := range m {
		for x := range m[y] {
			g.Set(x, y, m[y][x] != 0)
		}
	}
}

// Set marks the cell at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !inside(x, y) {
		return
	}
	g.cur[y][x] = 0
	if alive {
		g.cur[y][x] = 1
	}
}

// Alive reports whether (x, y) is a live cell.
func (g *Grid) Alive(x, y int) bool {
	return inside(x, y) && g.cur[y][x] == 1
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for y := range g.cur {
		for x := range g.cur[y] {
			n += int(g.cur[y][x])
		}
	}
	return n
}

// IsEmpty reports whether every cell is dead.
func (g *Grid) IsEmpty() bool {
	for y := range g.cur {
		for x := range g.cur[y] {
			if g.cur[y][x] != 0 {
				return false
			}
		}
	}
	return true
}

// Randomize draws every cell from src, row by row.
func (g *Grid) Randomize(src Source) {
	for y := range g.cur {
		for x := range g.cur[y] {
			g.cur[y][x] = 0
			if src.Bool() {
				g.cur[y][x] = 1
			}
		}
	}
}

// Invert flips every cell.
func (g *Grid) Invert() {
	for y := range g.cur {
		for x := range g.cur[y] {
			g.cur[y][x] ^= 1
		}
	}
}

// Step advances the simulation by one generation.
func (g *Grid) Step() {
	var nxt Matrix
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			neighbors := g.neighbors(x, y)
			alive := g.cur[y][x] == 1
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[y][x] = 1
			}
		}
	}
	g.cur = nxt
}

func (g *Grid) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.edges == Toroidal {
				nx = (nx + Size) % Size
				ny = (ny + Size) % Size
			} else if !inside(nx, ny) {
				continue
			}
			n += int(g.cur[ny][nx])
		}
	}
	return n
}

func inside(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}
