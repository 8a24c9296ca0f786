package component

import "github.com/milk9111/mutant/anim"

type AnimationTree struct {
	Tree *anim.Tree
	// Script is the prefab script path the tree's mapper came from, if any.
	Script string
}

var AnimationTreeComponent = NewComponent[AnimationTree]()
