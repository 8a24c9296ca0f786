package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type MutantTag struct{}

var MutantTagComponent = NewComponent[MutantTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()
