package mutant

import (
	"errors"
	"fmt"

	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/logger"
	"github.com/sirupsen/logrus"
)

// Output is everything a tick produced.
type Output struct {
	State            State
	Velocity         common.Vec3
	Facing           bool
	Yaw              float64
	TargetKnown      bool
	DistanceToTarget float64
	Signal           Signal
}

// Agent runs the mutant behavior for one body. Construction captures the
// spawn point; targets and navigation are attached later with Bind.
type Agent struct {
	cfg      Config
	body     Body
	animator Animator
	path     PathQuery
	sensor   Sensor
	emitter  *SignalEmitter

	state State
	yaw   float64
	bound bool

	log *logrus.Entry
}

func New(cfg Config, c Collaborators) (*Agent, error) {
	if c.Body == nil {
		return nil, ErrMissingBody
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mutant: new %q: %w", cfg.Label, err)
	}

	a := &Agent{
		cfg:      cfg,
		body:     c.Body,
		animator: c.Animator,
		emitter:  NewSignalEmitter(),
		state:    Idle,
		log:      logger.Log.WithField("mutant", cfg.Label),
	}
	a.sensor = Sensor{body: c.Body, spawn: c.Body.Position()}
	return a, nil
}

// Bind attaches the target and optional path query. It returns the
// collaborators that were missing; the agent keeps working without them.
func (a *Agent) Bind(target Target, path PathQuery) error {
	if a == nil {
		return nil
	}
	a.sensor.target = target
	a.path = path
	a.bound = true

	var errs []error
	if target == nil {
		errs = append(errs, ErrMissingTarget)
	}
	if path == nil {
		errs = append(errs, ErrMissingPathQuery)
	}
	if target != nil && path != nil {
		path.SetDestination(target.Position())
	}
	return errors.Join(errs...)
}

// Configure swaps tuning values in place. Spawn point, state and cooldown
// progress are kept.
func (a *Agent) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("mutant: configure %q: %w", cfg.Label, err)
	}
	a.cfg = cfg
	a.log = logger.Log.WithField("mutant", cfg.Label)
	return nil
}

func (a *Agent) Tick(dt float64) Output {
	vel := a.body.Velocity()
	vel.Y = IntegrateGravity(vel.Y, a.body.IsOnFloor(), a.cfg.Gravity, dt)

	reading := a.sensor.Read()
	state := Classify(a.cfg, reading)
	if state != a.state {
		a.log.WithFields(logrus.Fields{
			"from":     a.state,
			"to":       state,
			"distance": reading.DistanceToTarget,
			"spawn":    reading.DistanceFromSpawn,
		}).Debug("mutant state changed")
		a.state = state
	}

	out := Output{
		State:            state,
		TargetKnown:      reading.TargetKnown,
		DistanceToTarget: reading.DistanceToTarget,
	}

	pos, targetPos := reading.Position, reading.TargetPosition

	if InDetectionRange(a.cfg, reading) {
		if yaw, ok := common.YawTowards(pos, targetPos); ok {
			a.yaw = yaw
		}
		out.Facing = true
	}
	out.Yaw = a.yaw

	h := ComputeVelocity(state, pos, targetPos, a.path, a.cfg.Speed)
	vel.X = h.X
	vel.Z = h.Z
	a.body.MoveAndSlide(vel)
	out.Velocity = vel

	out.Signal = a.emitter.Emit(state, h.Len(), a.cfg.AttackCooldown, dt)
	if out.Signal.Pulse() {
		a.log.WithField("variant", out.Signal.Attack).Debug("mutant attack")
	}
	if a.animator != nil {
		a.animator.Apply(out.Signal)
	}
	return out
}

func (a *Agent) State() State {
	return a.state
}

func (a *Agent) Spawn() common.Vec3 {
	return a.sensor.spawn
}

func (a *Agent) Yaw() float64 {
	return a.yaw
}

func (a *Agent) Config() Config {
	return a.cfg
}

// Bound reports whether Bind has been called.
func (a *Agent) Bound() bool {
	return a.bound
}

// CooldownTimer exposes the attack cooldown progress in seconds.
func (a *Agent) CooldownTimer() float64 {
	return a.emitter.Timer()
}

func (a *Agent) DistanceToTarget() (float64, bool) {
	return a.sensor.DistanceToTarget()
}

func (a *Agent) DistanceFromSpawn() float64 {
	return a.sensor.DistanceFromSpawn()
}

func (a *Agent) TargetInAttackRange() bool {
	d, ok := a.sensor.DistanceToTarget()
	return ok && d <= a.cfg.AttackRange
}
