package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TickRate is the fixed number of simulation updates per second.
	TickRate  = 60
	TickDelta = 1.0 / TickRate
)
