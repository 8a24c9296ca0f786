package anim

import "github.com/milk9111/mutant/mutant"

// Condition names produced by DefaultMapper.
const (
	CondRun   = "run"
	CondIdle  = "idle"
	CondSwipe = "swipe"
	CondPunch = "punch"
)

// Mapper turns a tick's signal into named tree conditions.
type Mapper interface {
	Map(sig mutant.Signal) (map[string]bool, error)
}

// DefaultMapper sets run, idle, swipe and punch straight from the signal.
type DefaultMapper struct{}

func (DefaultMapper) Map(sig mutant.Signal) (map[string]bool, error) {
	return map[string]bool{
		CondRun:   sig.Run,
		CondIdle:  sig.Idle,
		CondSwipe: sig.Attack == mutant.Swipe,
		CondPunch: sig.Attack == mutant.Punch,
	}, nil
}
