package anim

import (
	"sort"
	"strings"

	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/logger"
	"github.com/milk9111/mutant/mutant"
	"github.com/sirupsen/logrus"
)

// ConditionPrefix is the parameter path conditions live under.
const ConditionPrefix = "parameters/conditions/"

// ClipDef describes one animation clip. A clip plays while the condition of
// the same name is true.
type ClipDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
}

// Tree is a small condition-driven animation state machine. Looping clips
// follow their condition; one-shot clips start on a rising condition and play
// to the end before the tree falls back to the last looping clip.
type Tree struct {
	mapper     Mapper
	clips      map[string]ClipDef
	conditions map[string]bool

	current    string
	rest       string
	frame      int
	frameTimer int
	finished   bool

	log *logrus.Entry
}

func NewTree(label string, clips []ClipDef, mapper Mapper) *Tree {
	if mapper == nil {
		mapper = DefaultMapper{}
	}
	t := &Tree{
		mapper:     mapper,
		clips:      make(map[string]ClipDef, len(clips)),
		conditions: map[string]bool{},
		log:        logger.Log.WithField("tree", label),
	}
	for _, c := range clips {
		if c.Name == "" {
			continue
		}
		t.clips[c.Name] = c
	}
	if _, ok := t.clips[CondIdle]; ok {
		t.play(CondIdle)
		t.rest = CondIdle
	}
	return t
}

// Start jumps to the named clip. A looping clip also becomes the clip the
// tree rests on. Unknown names leave the tree untouched and return false.
func (t *Tree) Start(name string) bool {
	def, ok := t.clips[name]
	if !ok {
		return false
	}
	t.play(name)
	if def.Loop {
		t.rest = name
	}
	return true
}

func (t *Tree) SetMapper(m Mapper) {
	if m == nil {
		m = DefaultMapper{}
	}
	t.mapper = m
}

// Apply maps the signal to conditions and switches clips. A failing mapper is
// logged and replaced by DefaultMapper for this tick.
func (t *Tree) Apply(sig mutant.Signal) {
	conds, err := t.mapper.Map(sig)
	if err != nil {
		t.log.WithError(err).Warn("anim: mapper failed")
		conds, _ = DefaultMapper{}.Map(sig)
	}

	var rising []string
	for name, v := range conds {
		if v && !t.conditions[name] {
			rising = append(rising, name)
		}
		t.conditions[name] = v
	}
	sort.Strings(rising)
	t.transition(rising)
}

func (t *Tree) transition(rising []string) {
	for _, name := range rising {
		if def, ok := t.clips[name]; ok && !def.Loop {
			t.play(name)
			return
		}
	}

	for _, name := range t.sortedConditions() {
		def, ok := t.clips[name]
		if !ok || !def.Loop || !t.conditions[name] {
			continue
		}
		t.rest = name
		break
	}

	if cur, ok := t.clips[t.current]; ok && !cur.Loop && !t.finished {
		return
	}
	if t.rest != "" && t.rest != t.current {
		t.play(t.rest)
	}
}

// Advance steps the current clip by one tick.
func (t *Tree) Advance() {
	def, ok := t.clips[t.current]
	if !ok || def.FrameCount <= 0 || t.finished {
		return
	}

	ticksPerFrame := 1
	if def.FPS > 0 {
		ticksPerFrame = int(common.TickRate / def.FPS)
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	t.frameTimer++
	if t.frameTimer < ticksPerFrame {
		return
	}
	t.frameTimer = 0
	t.frame++
	if t.frame < def.FrameCount {
		return
	}

	if def.Loop {
		t.frame = 0
		return
	}
	if t.rest != "" && t.rest != t.current {
		t.play(t.rest)
		return
	}
	t.frame = def.FrameCount - 1
	t.finished = true
}

func (t *Tree) play(name string) {
	t.current = name
	t.frame = 0
	t.frameTimer = 0
	t.finished = false
}

// Condition reads a condition by short name or full parameter path.
func (t *Tree) Condition(name string) bool {
	return t.conditions[strings.TrimPrefix(name, ConditionPrefix)]
}

// Set writes a condition directly, bypassing the mapper.
func (t *Tree) Set(name string, v bool) {
	name = strings.TrimPrefix(name, ConditionPrefix)
	rising := v && !t.conditions[name]
	t.conditions[name] = v
	if rising {
		t.transition([]string{name})
	} else {
		t.transition(nil)
	}
}

// Conditions returns a copy keyed by full parameter path.
func (t *Tree) Conditions() map[string]bool {
	out := make(map[string]bool, len(t.conditions))
	for k, v := range t.conditions {
		out[ConditionPrefix+k] = v
	}
	return out
}

func (t *Tree) Current() string {
	return t.current
}

func (t *Tree) Frame() int {
	return t.frame
}

func (t *Tree) Finished() bool {
	return t.finished
}

func (t *Tree) sortedConditions() []string {
	names := make([]string, 0, len(t.conditions))
	for k := range t.conditions {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
