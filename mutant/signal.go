package mutant

// AttackVariant selects which attack animation a pulse triggers.
type AttackVariant int

const (
	NoAttack AttackVariant = iota
	Swipe
	Punch
)

func (v AttackVariant) String() string {
	switch v {
	case Swipe:
		return "swipe"
	case Punch:
		return "punch"
	default:
		return "none"
	}
}

// Signal is the animation output of one tick.
type Signal struct {
	State State
	Run   bool
	Idle  bool
	// Attack is set only on the tick an attack pulse fires.
	Attack AttackVariant
}

func (s Signal) Pulse() bool {
	return s.Attack != NoAttack
}

const cooldownEpsilon = 1e-9

// SignalEmitter turns the classified state into animation signals and owns the
// attack cooldown timer and the alternating variant flag.
type SignalEmitter struct {
	timer    float64
	useSwipe bool
}

func NewSignalEmitter() *SignalEmitter {
	return &SignalEmitter{useSwipe: true}
}

// Timer returns the seconds accumulated since the last attack pulse, or since
// entering the attack state.
func (e *SignalEmitter) Timer() float64 {
	return e.timer
}

// NextVariant is the variant the next pulse will use.
func (e *SignalEmitter) NextVariant() AttackVariant {
	if e.useSwipe {
		return Swipe
	}
	return Punch
}

func (e *SignalEmitter) Emit(state State, horizontalSpeed, cooldown, dt float64) Signal {
	sig := Signal{State: state}
	switch state {
	case Chasing:
		sig.Run = horizontalSpeed > 0
		e.timer = 0
	case Idle:
		sig.Idle = true
		e.timer = 0
	case Attacking:
		if dt > 0 {
			e.timer += dt
		}
		if e.timer+cooldownEpsilon >= cooldown {
			sig.Attack = e.NextVariant()
			e.useSwipe = !e.useSwipe
			e.timer = 0
		}
	}
	return sig
}
