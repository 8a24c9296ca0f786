package nav

import (
	"math"

	"github.com/milk9111/mutant/common"
)

// Cell addresses a grid square on the XZ plane.
type Cell struct {
	X int
	Z int
}

// Grid is a walkability map laid over the XZ plane starting at the origin.
type Grid struct {
	CellSize float64
	Cols     int
	Rows     int
	blocked  []bool
}

func NewGrid(width, depth, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(depth / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
		blocked:  make([]bool, cols*rows),
	}
}

func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Z >= 0 && c.X < g.Cols && c.Z < g.Rows
}

func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.Z*g.Cols+c.X]
}

func (g *Grid) SetBlocked(c Cell, blocked bool) {
	if !g.InBounds(c) {
		return
	}
	g.blocked[c.Z*g.Cols+c.X] = blocked
}

// BlockRect marks every cell overlapped by the axis-aligned rectangle
// centered at (cx, cz).
func (g *Grid) BlockRect(cx, cz, width, depth float64) {
	minX, minZ := cx-width/2, cz-depth/2
	maxX, maxZ := cx+width/2, cz+depth/2
	start := g.CellOf(common.V3(minX, 0, minZ))
	end := g.CellOf(common.V3(maxX-0.001, 0, maxZ-0.001))
	for z := start.Z; z <= end.Z; z++ {
		for x := start.X; x <= end.X; x++ {
			g.SetBlocked(Cell{X: x, Z: z}, true)
		}
	}
}

// NearestWalkable returns the free cell closest to p. The cell under p wins
// when it is free; otherwise rings around it are searched outward and the
// first ring holding a free cell decides, nearest center first.
func (g *Grid) NearestWalkable(p common.Vec3) (Cell, bool) {
	origin := g.CellOf(p)
	if !g.Blocked(origin) {
		return origin, true
	}
	maxRing := max(g.Cols, g.Rows)
	for r := 1; r <= maxRing; r++ {
		best, found := Cell{}, false
		bestDist := math.Inf(1)
		for z := origin.Z - r; z <= origin.Z+r; z++ {
			for x := origin.X - r; x <= origin.X+r; x++ {
				if x != origin.X-r && x != origin.X+r && z != origin.Z-r && z != origin.Z+r {
					continue
				}
				c := Cell{X: x, Z: z}
				if g.Blocked(c) {
					continue
				}
				d := g.CenterOf(c, 0).DistanceTo(p.Horizontal())
				if d < bestDist {
					best, bestDist, found = c, d, true
				}
			}
		}
		if found {
			return best, true
		}
	}
	return Cell{}, false
}

// CellOf returns the cell containing p, clamped to the grid.
func (g *Grid) CellOf(p common.Vec3) Cell {
	return Cell{
		X: common.Clamp(int(math.Floor(p.X/g.CellSize)), 0, g.Cols-1),
		Z: common.Clamp(int(math.Floor(p.Z/g.CellSize)), 0, g.Rows-1),
	}
}

// CenterOf returns the world-space center of c at height y.
func (g *Grid) CenterOf(c Cell, y float64) common.Vec3 {
	half := g.CellSize * 0.5
	return common.V3(float64(c.X)*g.CellSize+half, y, float64(c.Z)*g.CellSize+half)
}

func (g *Grid) neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		n := Cell{X: c.X + d.X, Z: c.Z + d.Z}
		if g.InBounds(n) && !g.Blocked(n) {
			out = append(out, n)
		}
	}
	return out
}
