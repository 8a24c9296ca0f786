package component

// LevelBounds stores the world-space extent of the current level.
type LevelBounds struct {
	Width  float64
	Depth  float64
	FloorY float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
