package mutant

import "github.com/milk9111/mutant/common"

type fakeBody struct {
	pos       common.Vec3
	vel       common.Vec3
	onFloor   bool
	committed []common.Vec3
	reads     int
}

func (b *fakeBody) Position() common.Vec3 {
	b.reads++
	return b.pos
}
func (b *fakeBody) Velocity() common.Vec3 { return b.vel }
func (b *fakeBody) IsOnFloor() bool       { return b.onFloor }
func (b *fakeBody) MoveAndSlide(v common.Vec3) {
	b.vel = v
	b.committed = append(b.committed, v)
}

type fakeTarget struct {
	pos   common.Vec3
	reads int
}

func (t *fakeTarget) Position() common.Vec3 {
	t.reads++
	return t.pos
}

type fakePath struct {
	destination  common.Vec3
	destinations int
	finished     bool
	next         common.Vec3
}

func (p *fakePath) SetDestination(d common.Vec3) {
	p.destination = d
	p.destinations++
}
func (p *fakePath) IsFinished() bool          { return p.finished }
func (p *fakePath) NextPosition() common.Vec3 { return p.next }

type recordingAnimator struct {
	signals []Signal
}

func (r *recordingAnimator) Apply(sig Signal) { r.signals = append(r.signals, sig) }
