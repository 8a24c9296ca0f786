package nav

import (
	"container/heap"
	"math"
)

// FindCellPath runs A* on the 4-way grid. It returns nil when either end is
// blocked or the goal is unreachable. maxNodes bounds the search; zero means
// no bound.
func FindCellPath(g *Grid, start, goal Cell, maxNodes int) []Cell {
	if g == nil || !g.InBounds(start) || !g.InBounds(goal) {
		return nil
	}
	if g.Blocked(start) || g.Blocked(goal) {
		return nil
	}
	if start == goal {
		return []Cell{start}
	}

	n := g.Cols * g.Rows
	cameFrom := make([]int, n)
	gScore := make([]float64, n)
	for i := range cameFrom {
		cameFrom[i] = -1
		gScore[i] = math.Inf(1)
	}
	startIdx := g.index(start)
	goalIdx := g.index(goal)
	gScore[startIdx] = 0

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &openItem{cell: start, f: heuristic(start, goal)})

	processed := 0
	for open.Len() > 0 {
		current := heap.Pop(open).(*openItem)
		cur := current.cell
		curIdx := g.index(cur)
		if curIdx == goalIdx {
			return reconstructPath(g, cameFrom, startIdx, goalIdx)
		}
		// skip stale heap entries
		if current.g > gScore[curIdx] {
			continue
		}
		processed++
		if maxNodes > 0 && processed > maxNodes {
			return nil
		}

		for _, next := range g.neighbors(cur) {
			idx := g.index(next)
			tentative := gScore[curIdx] + 1
			if tentative < gScore[idx] {
				cameFrom[idx] = curIdx
				gScore[idx] = tentative
				heap.Push(open, &openItem{cell: next, g: tentative, f: tentative + heuristic(next, goal)})
			}
		}
	}
	return nil
}

func (g *Grid) index(c Cell) int {
	return c.Z*g.Cols + c.X
}

func (g *Grid) cellAt(idx int) Cell {
	return Cell{X: idx % g.Cols, Z: idx / g.Cols}
}

func reconstructPath(g *Grid, cameFrom []int, startIdx, goalIdx int) []Cell {
	path := make([]Cell, 0, 32)
	for cur := goalIdx; cur != -1; cur = cameFrom[cur] {
		path = append(path, g.cellAt(cur))
		if cur == startIdx {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func heuristic(a, b Cell) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Z-b.Z))
}

type openItem struct {
	cell  Cell
	f     float64
	g     float64
	index int
}

type openSet []*openItem

func (o openSet) Len() int           { return len(o) }
func (o openSet) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
