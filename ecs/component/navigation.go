package component

import "github.com/milk9111/mutant/nav"

type NavGrid struct {
	Grid *nav.Grid
}

var NavGridComponent = NewComponent[NavGrid]()

// NavigationAgent holds the path follower of one body. Agent is created by
// the mutant system once a NavGrid exists; the distances configure it.
type NavigationAgent struct {
	Agent                 *nav.Agent
	PathDesiredDistance   float64
	TargetDesiredDistance float64
	RepathInterval        int
	MaxNodes              int
}

var NavigationAgentComponent = NewComponent[NavigationAgent]()
