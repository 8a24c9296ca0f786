package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
	"github.com/milk9111/mutant/ecs/entity"
	"github.com/milk9111/mutant/ecs/system"
	"github.com/milk9111/mutant/levels"
	"github.com/milk9111/mutant/logger"
	"github.com/sirupsen/logrus"
)

// approachStop is how close the scripted player walks to a mutant.
const approachStop = 2.0

type Options struct {
	Level    string
	Ticks    int
	Approach bool
}

type Report struct {
	Level            string
	Ticks            int
	StateChanges     int
	Attacks          int
	ConditionChanges int
}

func runScenario(ctx context.Context, opts Options) (Report, error) {
	lvl, err := loadLevel(opts.Level)
	if err != nil {
		return Report{}, err
	}
	log := logger.Log.WithField("level", lvl.Name)

	w := ecs.NewWorld()
	w.SetDeltaTime(common.TickDelta)
	if err := entity.BuildLevel(w, lvl); err != nil {
		return Report{}, fmt.Errorf("animdemo: build %s: %w", lvl.Name, err)
	}

	input := &system.InputSystem{Read: func() component.Input { return component.Input{} }}
	if opts.Approach {
		input.Read = func() component.Input { return approachInput(w) }
	}
	pipeline := system.NewPipeline(input, nil)

	report := Report{Level: lvl.Name}
	last := map[ecs.Entity]string{}
	for tick := 0; tick < opts.Ticks; tick++ {
		if tick%int(common.TickRate) == 0 {
			if err := ctx.Err(); err != nil {
				return report, err
			}
		}
		pipeline.Update(w)
		report.Ticks++

		for _, ev := range w.Events().Drain() {
			switch ev.Type {
			case ecs.EventMutantStateChanged:
				report.StateChanges++
			case ecs.EventMutantAttack:
				report.Attacks++
			}
		}

		ecs.ForEach2(w, component.MutantComponent.Kind(), component.AnimationTreeComponent.Kind(), func(e ecs.Entity, m *component.Mutant, tree *component.AnimationTree) {
			active := activeConditions(tree.Tree.Conditions())
			if active == last[e] {
				return
			}
			last[e] = active
			report.ConditionChanges++
			log.WithFields(logrus.Fields{
				"tick":       w.Tick(),
				"mutant":     m.Label,
				"state":      m.Last.State,
				"conditions": active,
				"clip":       tree.Tree.Current(),
			}).Info("animation conditions changed")
		})
	}
	return report, nil
}

func loadLevel(name string) (*levels.Level, error) {
	if strings.HasSuffix(name, ".json") {
		if _, err := os.Stat(name); err == nil {
			return levels.LoadFile(name)
		}
	}
	return levels.Load(name)
}

// activeConditions renders the true conditions as a stable string.
func activeConditions(conds map[string]bool) string {
	var names []string
	for k, v := range conds {
		if v {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// approachInput steers the player toward the nearest mutant and stops short of
// it.
func approachInput(w *ecs.World) component.Input {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return component.Input{}
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return component.Input{}
	}
	from := pt.Position()

	best, bestDist := common.Vec3{}, -1.0
	ecs.ForEach2(w, component.MutantTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.MutantTag, t *component.Transform) {
		d := from.Horizontal().DistanceTo(t.Position().Horizontal())
		if bestDist < 0 || d < bestDist {
			best, bestDist = t.Position(), d
		}
	})
	if bestDist < 0 || bestDist <= approachStop {
		return component.Input{}
	}
	dir := best.Sub(from).Horizontal().Normalized()
	return component.Input{MoveX: dir.X, MoveZ: dir.Z}
}
