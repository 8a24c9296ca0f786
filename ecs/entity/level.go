package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
	"github.com/milk9111/mutant/levels"
	"github.com/milk9111/mutant/logger"
	"github.com/milk9111/mutant/nav"
	"github.com/sirupsen/logrus"
)

// BuildLevel populates w with the level's bounds, nav grid, walls, player and
// mutants. Entities that fail to build are skipped and their errors joined.
func BuildLevel(w *ecs.World, lvl *levels.Level) error {
	if w == nil || lvl == nil {
		return errors.New("entity: build level: nil world or level")
	}

	bounds := w.CreateEntity()
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  lvl.Width,
		Depth:  lvl.Depth,
		FloorY: lvl.FloorY,
	}); err != nil {
		return fmt.Errorf("entity: add level bounds: %w", err)
	}

	grid := nav.NewGrid(lvl.Width, lvl.Depth, lvl.CellSize)
	for _, wall := range lvl.Walls {
		grid.BlockRect(wall.X, wall.Z, wall.Width, wall.Depth)
	}
	if err := ecs.Add(w, bounds, component.NavGridComponent.Kind(), &component.NavGrid{Grid: grid}); err != nil {
		return fmt.Errorf("entity: add nav grid: %w", err)
	}

	var errs []error
	for i, wall := range lvl.Walls {
		if _, err := BuildWall(w, wall, lvl.FloorY); err != nil {
			errs = append(errs, fmt.Errorf("wall %d: %w", i, err))
		}
	}

	players, mutants := 0, 0
	for i, spawn := range lvl.Entities {
		var err error
		switch spawn.Type {
		case "player":
			_, err = BuildPlayer(w, spawn)
			players++
		case "mutant":
			_, err = BuildMutant(w, spawn, fmt.Sprintf("mutant_%d", i))
			mutants++
		default:
			err = fmt.Errorf("unknown entity type %q", spawn.Type)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("entity %d (%s): %w", i, spawn.Type, err))
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"level":   lvl.Name,
		"walls":   len(lvl.Walls),
		"players": players,
		"mutants": mutants,
	}).Info("level built")
	return errors.Join(errs...)
}

func BuildWall(w *ecs.World, wall levels.Wall, floorY float64) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
		return e, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: wall.X, Y: floorY, Z: wall.Z}); err != nil {
		return e, err
	}
	if err := ecs.Add(w, e, component.StaticBoxComponent.Kind(), &component.StaticBox{Width: wall.Width, Depth: wall.Depth}); err != nil {
		return e, err
	}
	return e, nil
}
