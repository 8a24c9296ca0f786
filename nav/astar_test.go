package nav

import (
	"testing"

	"github.com/milk9111/mutant/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCellPath(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(g *Grid)
		start   Cell
		goal    Cell
		wantLen int // -1 = no path
	}{
		{"same_cell", nil, Cell{2, 2}, Cell{2, 2}, 1},
		{"straight", nil, Cell{0, 0}, Cell{4, 0}, 5},
		{"manhattan", nil, Cell{0, 0}, Cell{3, 3}, 7},
		{
			name: "around_wall",
			setup: func(g *Grid) {
				for z := 0; z < 4; z++ {
					g.SetBlocked(Cell{2, z}, true)
				}
			},
			start:   Cell{0, 0},
			goal:    Cell{4, 0},
			wantLen: 13,
		},
		{
			name: "goal_blocked",
			setup: func(g *Grid) {
				g.SetBlocked(Cell{4, 4}, true)
			},
			start:   Cell{0, 0},
			goal:    Cell{4, 4},
			wantLen: -1,
		},
		{
			name: "goal_enclosed",
			setup: func(g *Grid) {
				for x := 0; x < 5; x++ {
					g.SetBlocked(Cell{x, 3}, true)
				}
			},
			start:   Cell{0, 0},
			goal:    Cell{0, 4},
			wantLen: -1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(5, 5, 1)
			if tc.setup != nil {
				tc.setup(g)
			}
			path := FindCellPath(g, tc.start, tc.goal, 0)
			if tc.wantLen < 0 {
				assert.Nil(t, path)
				return
			}
			require.Len(t, path, tc.wantLen)
			assert.Equal(t, tc.start, path[0])
			assert.Equal(t, tc.goal, path[len(path)-1])
			for i := 1; i < len(path); i++ {
				assert.Equal(t, 1.0, heuristic(path[i-1], path[i]), "steps are 4-way adjacent")
				assert.False(t, g.Blocked(path[i]))
			}
		})
	}
}

func TestFindCellPathMaxNodes(t *testing.T) {
	g := NewGrid(50, 50, 1)
	assert.Nil(t, FindCellPath(g, Cell{0, 0}, Cell{49, 49}, 10))
	assert.NotNil(t, FindCellPath(g, Cell{0, 0}, Cell{49, 49}, 0))
}

func TestGridCellMath(t *testing.T) {
	g := NewGrid(10, 6, 2)
	assert.Equal(t, 5, g.Cols)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, Cell{1, 2}, g.CellOf(common.V3(3.9, 0, 5.1)))
	assert.Equal(t, Cell{0, 2}, g.CellOf(common.V3(-4, 0, 99)), "clamped")
	assert.Equal(t, common.V3(3, 7, 5), g.CenterOf(Cell{1, 2}, 7))

	g.BlockRect(5, 3, 2, 2)
	assert.True(t, g.Blocked(Cell{2, 1}))
	assert.False(t, g.Blocked(Cell{1, 1}))
	assert.True(t, g.Blocked(Cell{-1, 0}), "out of bounds counts as blocked")
}

func TestGridNearestWalkable(t *testing.T) {
	g := NewGrid(10, 10, 1)
	c, ok := g.NearestWalkable(common.V3(2.5, 0, 2.5))
	require.True(t, ok)
	assert.Equal(t, Cell{2, 2}, c, "free cell is its own nearest")

	g.BlockRect(5, 5, 1.2, 1.2)
	c, ok = g.NearestWalkable(common.V3(4.1, 0, 5.5))
	require.True(t, ok)
	assert.Equal(t, Cell{3, 5}, c)

	full := NewGrid(2, 2, 1)
	full.BlockRect(1, 1, 2, 2)
	_, ok = full.NearestWalkable(common.V3(0.5, 0, 0.5))
	assert.False(t, ok)
}
