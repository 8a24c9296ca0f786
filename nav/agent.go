package nav

import (
	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/logger"
)

const (
	defaultPathDesiredDistance   = 0.5
	defaultTargetDesiredDistance = 1.0
	defaultRepathInterval        = 15
	defaultMaxNodes              = 4096
)

// Agent follows grid paths for one body. It satisfies mutant.PathQuery.
type Agent struct {
	// PathDesiredDistance is how close the body must get to a waypoint
	// before the next one is handed out.
	PathDesiredDistance float64
	// TargetDesiredDistance is how close to the destination counts as done.
	TargetDesiredDistance float64
	// RepathInterval forces a new search after this many SetDestination
	// calls even if the destination cell did not change.
	RepathInterval int
	MaxNodes       int

	grid     *Grid
	position func() common.Vec3

	destination    common.Vec3
	destCell       Cell
	hasDestination bool
	reachable      bool
	path           []common.Vec3
	index          int
	sinceRepath    int
}

func NewAgent(grid *Grid, position func() common.Vec3) *Agent {
	return &Agent{
		PathDesiredDistance:   defaultPathDesiredDistance,
		TargetDesiredDistance: defaultTargetDesiredDistance,
		RepathInterval:        defaultRepathInterval,
		MaxNodes:              defaultMaxNodes,
		grid:                  grid,
		position:              position,
	}
}

func (a *Agent) SetDestination(p common.Vec3) {
	if a == nil || a.grid == nil {
		return
	}
	cell := a.grid.CellOf(p)
	a.destination = p
	a.sinceRepath++
	if !a.hasDestination || cell != a.destCell || a.sinceRepath >= a.RepathInterval {
		a.destCell = cell
		a.hasDestination = true
		a.repath()
	}
}

func (a *Agent) Destination() (common.Vec3, bool) {
	return a.destination, a.hasDestination
}

// IsFinished reports whether there is nothing left to follow: no destination,
// no route, or the body is already within TargetDesiredDistance.
func (a *Agent) IsFinished() bool {
	if a == nil || !a.hasDestination || !a.reachable {
		return true
	}
	pos := a.currentPosition()
	if horizontalDistance(pos, a.destination) <= a.TargetDesiredDistance {
		return true
	}
	return a.index >= len(a.path)
}

// NextPosition returns the waypoint to steer toward. When the route is done it
// returns the body's own position.
func (a *Agent) NextPosition() common.Vec3 {
	pos := a.currentPosition()
	if a == nil {
		return pos
	}
	for a.index < len(a.path)-1 && horizontalDistance(pos, a.path[a.index]) <= a.PathDesiredDistance {
		a.index++
	}
	if a.index >= len(a.path) {
		return pos
	}
	return a.path[a.index]
}

// Path returns the remaining waypoints.
func (a *Agent) Path() []common.Vec3 {
	if a == nil || a.index >= len(a.path) {
		return nil
	}
	return a.path[a.index:]
}

func (a *Agent) repath() {
	a.sinceRepath = 0
	a.index = 0
	a.path = a.path[:0]
	a.reachable = false

	// bodies and targets hugging a wall may sit in a cell the wall touches;
	// route between the closest free cells instead
	pos := a.currentPosition()
	start, okStart := a.grid.NearestWalkable(pos)
	goal, okGoal := a.grid.NearestWalkable(a.destination)
	var cells []Cell
	if okStart && okGoal {
		cells = FindCellPath(a.grid, start, goal, a.MaxNodes)
	}
	if cells == nil {
		logger.Log.WithField("destination", a.destination.String()).Debug("nav: destination unreachable")
		return
	}
	a.reachable = true

	// the first cell is the one the body stands in unless it had to step out
	// of a blocked one
	if start == a.grid.CellOf(pos) {
		cells = cells[1:]
	}
	for _, c := range cells {
		a.path = append(a.path, a.grid.CenterOf(c, pos.Y))
	}
	dest := a.destination
	dest.Y = pos.Y
	if len(a.path) == 0 || goal != a.destCell {
		a.path = append(a.path, dest)
	} else {
		a.path[len(a.path)-1] = dest
	}
}

func (a *Agent) currentPosition() common.Vec3 {
	if a == nil || a.position == nil {
		return common.Vec3{}
	}
	return a.position()
}

func horizontalDistance(a, b common.Vec3) float64 {
	return a.Horizontal().DistanceTo(b.Horizontal())
}
