package nav

import (
	"testing"

	"github.com/milk9111/mutant/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mover struct {
	pos common.Vec3
}

func (m *mover) position() common.Vec3 { return m.pos }

func TestAgentWithoutDestinationIsFinished(t *testing.T) {
	m := &mover{pos: common.V3(1, 0, 1)}
	a := NewAgent(NewGrid(10, 10, 1), m.position)
	assert.True(t, a.IsFinished())
	assert.Equal(t, m.pos, a.NextPosition())
}

func TestAgentFollowsPathToDestination(t *testing.T) {
	g := NewGrid(10, 10, 1)
	m := &mover{pos: common.V3(0.5, 0, 0.5)}
	a := NewAgent(g, m.position)

	dest := common.V3(5.5, 2, 0.5)
	a.SetDestination(dest)
	require.False(t, a.IsFinished())

	next := a.NextPosition()
	assert.Equal(t, common.V3(1.5, 0, 0.5), next)

	// walk the body along the waypoints
	for i := 0; i < 20 && !a.IsFinished(); i++ {
		m.pos = a.NextPosition()
	}
	assert.True(t, a.IsFinished())
	assert.LessOrEqual(t, horizontalDistance(m.pos, dest), a.TargetDesiredDistance)
	assert.Equal(t, 0.0, m.pos.Y, "waypoints stay at body height")
}

func TestAgentRoutesAroundObstacle(t *testing.T) {
	g := NewGrid(6, 6, 1)
	for z := 0; z < 5; z++ {
		g.SetBlocked(Cell{3, z}, true)
	}
	m := &mover{pos: common.V3(0.5, 0, 0.5)}
	a := NewAgent(g, m.position)
	a.SetDestination(common.V3(5.5, 0, 0.5))
	require.False(t, a.IsFinished())

	for _, p := range a.Path() {
		assert.False(t, g.Blocked(g.CellOf(p)))
	}
	last := a.Path()[len(a.Path())-1]
	assert.Equal(t, common.V3(5.5, 0, 0.5), last)
}

func TestAgentUnreachableIsFinished(t *testing.T) {
	g := NewGrid(6, 6, 1)
	for x := 0; x < 6; x++ {
		g.SetBlocked(Cell{x, 3}, true)
	}
	m := &mover{pos: common.V3(0.5, 0, 0.5)}
	a := NewAgent(g, m.position)
	a.SetDestination(common.V3(0.5, 0, 5.5))
	assert.True(t, a.IsFinished())
	assert.Empty(t, a.Path())
}

func TestAgentWithinTargetDistanceIsFinished(t *testing.T) {
	m := &mover{pos: common.V3(2.5, 0, 2.5)}
	a := NewAgent(NewGrid(10, 10, 1), m.position)
	a.SetDestination(common.V3(3.2, 0, 2.5))
	assert.True(t, a.IsFinished())
}

func TestAgentRepathsWhenDestinationCellChanges(t *testing.T) {
	m := &mover{pos: common.V3(0.5, 0, 0.5)}
	a := NewAgent(NewGrid(10, 10, 1), m.position)
	a.SetDestination(common.V3(5.5, 0, 0.5))
	first := append([]common.Vec3(nil), a.Path()...)

	a.SetDestination(common.V3(5.6, 0, 0.6))
	assert.Equal(t, first[:len(first)-1], a.Path()[:len(a.Path())-1], "same cell keeps the route")

	a.SetDestination(common.V3(0.5, 0, 5.5))
	last := a.Path()[len(a.Path())-1]
	assert.Equal(t, common.V3(0.5, 0, 5.5), last)
}

func TestAgentReachesTargetBesideWall(t *testing.T) {
	g := NewGrid(10, 10, 1)
	g.BlockRect(5, 5, 1.2, 1.2)
	m := &mover{pos: common.V3(1, 0, 5.5)}
	a := NewAgent(g, m.position)

	// outside the wall but inside a cell the wall touches
	dest := common.V3(4.1, 0, 5.5)
	require.True(t, g.Blocked(g.CellOf(dest)))
	a.SetDestination(dest)
	require.False(t, a.IsFinished())

	path := a.Path()
	require.NotEmpty(t, path)
	assert.Equal(t, dest, path[len(path)-1])
	for _, p := range path[:len(path)-1] {
		assert.False(t, g.Blocked(g.CellOf(p)))
	}

	for i := 0; i < 20 && !a.IsFinished(); i++ {
		m.pos = a.NextPosition()
	}
	assert.True(t, a.IsFinished())
	assert.LessOrEqual(t, horizontalDistance(m.pos, dest), a.TargetDesiredDistance)
}

func TestAgentLeavesBlockedStartCell(t *testing.T) {
	g := NewGrid(10, 10, 1)
	g.BlockRect(5, 5, 1.2, 1.2)
	m := &mover{pos: common.V3(4.1, 0, 5.5)}
	a := NewAgent(g, m.position)

	a.SetDestination(common.V3(0.5, 0, 5.5))
	require.False(t, a.IsFinished())
	assert.Equal(t, common.V3(3.5, 0, 5.5), a.NextPosition())
	assert.Equal(t, common.V3(0.5, 0, 5.5), a.Path()[len(a.Path())-1])
}
