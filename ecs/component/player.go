package component

type PlayerController struct {
	MoveSpeed float64
	Gravity   float64
}

var PlayerControllerComponent = NewComponent[PlayerController]()
