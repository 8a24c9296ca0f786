package component

import "github.com/milk9111/mutant/mutant"

type Mutant struct {
	Label  string
	Prefab string
	Config mutant.Config

	Agent *mutant.Agent
	// Last is the output of the most recent tick.
	Last mutant.Output
	// Failed is set when the agent could not be constructed.
	Failed bool
}

var MutantComponent = NewComponent[Mutant]()
