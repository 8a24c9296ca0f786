package main

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
	"github.com/milk9111/mutant/ecs/entity"
	"github.com/milk9111/mutant/ecs/system"
	"github.com/milk9111/mutant/levels"
	"github.com/milk9111/mutant/logger"
	"github.com/milk9111/mutant/mutant"
	"github.com/milk9111/mutant/prefabs"
	"github.com/milk9111/mutant/ui"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

type Game struct {
	world    *ecs.World
	pipeline *ecs.Scheduler
	level    *levels.Level
	watcher  *prefabs.Watcher

	menu   *ui.Controller
	menuUI *ebitenui.UI

	paused bool
	quit   bool
	debug  bool
	frames int
}

func NewGame(levelName string, debug bool, watch bool) (*Game, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, err
	}

	g := &Game{level: lvl, debug: debug}

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			logger.Log.WithError(err).Warn("prefab hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	g.world = ecs.NewWorld()
	g.world.SetDeltaTime(common.TickDelta)
	if err := entity.BuildLevel(g.world, lvl); err != nil {
		logger.Log.WithError(err).Warn("level built with errors")
	}
	g.pipeline = system.NewPipeline(system.NewInputSystem(), g.watcher)

	menuUI, panels := newMenuUI(menuActions{
		start:  func() { g.menu.HideAll(); g.SetPaused(false) },
		resume: func() { _ = g.menu.HidePause() },
		main:   func() { g.menu.ShowMain() },
		quit:   func() { g.quit = true },
	})
	menu, err := ui.NewController(g, panels)
	if err != nil {
		return nil, err
	}
	g.menu = menu
	g.menuUI = menuUI
	g.menu.ShowMain()
	return g, nil
}

// SetPaused implements ui.Pauser.
func (g *Game) SetPaused(paused bool) {
	if g.paused != paused {
		logger.Log.WithField("paused", paused).Debug("game pause toggled")
	}
	g.paused = paused
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		g.close()
		return ebiten.Termination
	}

	inMainMenu := containsPanel(g.menu.Visible(), ui.PanelMain)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !inMainMenu {
		if err := g.menu.TogglePause(); err != nil {
			logger.Log.WithError(err).Warn("pause unavailable")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
		logger.SetDebug(g.debug)
	}

	g.menuUI.Update()
	if g.paused || inMainMenu {
		return nil
	}

	g.pipeline.Update(g.world)
	for _, ev := range g.world.Events().Drain() {
		g.logEvent(ev)
	}
	return nil
}

func (g *Game) logEvent(ev ecs.Event) {
	switch data := ev.Data.(type) {
	case system.MutantStateChange:
		logger.Log.WithFields(logrus.Fields{
			"mutant": data.Label,
			"from":   data.From,
			"to":     data.To,
			"tick":   g.world.Tick(),
		}).Info("mutant state changed")
	case system.MutantAttack:
		logger.Log.WithFields(logrus.Fields{
			"mutant":  data.Label,
			"variant": data.Variant,
			"tick":    g.world.Tick(),
		}).Info("mutant attack")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x18, G: 0x18, B: 0x1c, A: 0xff})

	scale, offX, offY := g.viewTransform()
	toScreen := func(x, z float64) (float32, float32) {
		return float32(offX + x*scale), float32(offY + z*scale)
	}

	x0, y0 := toScreen(0, 0)
	vector.StrokeRect(screen, x0, y0, float32(g.level.Width*scale), float32(g.level.Depth*scale), 1, colornames.Gray, false)

	ecs.ForEach2(g.world, component.StaticBoxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, box *component.StaticBox, t *component.Transform) {
		x, y := toScreen(t.X-box.Width/2, t.Z-box.Depth/2)
		vector.FillRect(screen, x, y, float32(box.Width*scale), float32(box.Depth*scale), colornames.Slategray, false)
	})

	if g.debug {
		g.drawPaths(screen, toScreen)
	}

	ecs.ForEach2(g.world, component.CharacterBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.CharacterBody, t *component.Transform) {
		x, y := toScreen(t.X, t.Z)
		r := float32(body.Radius * scale)
		clr := color.Color(colornames.Deepskyblue)
		if m, ok := ecs.Get(g.world, e, component.MutantComponent.Kind()); ok {
			clr = stateColor(m.Last.State)
			if g.debug {
				vector.StrokeCircle(screen, x, y, float32(m.Config.DetectionRange*scale), 1, colornames.Darkolivegreen, false)
				vector.StrokeCircle(screen, x, y, float32(m.Config.AttackRange*scale), 1, colornames.Darkred, false)
			}
		}
		vector.FillCircle(screen, x, y, r, clr, true)
		fx := x + r*float32(math.Sin(t.Yaw))
		fy := y + r*float32(math.Cos(t.Yaw))
		vector.StrokeLine(screen, x, y, fx, fy, 2, colornames.White, true)
	})

	ebitenutil.DebugPrint(screen, g.status())
	g.menuUI.Draw(screen)
}

func (g *Game) drawPaths(screen *ebiten.Image, toScreen func(x, z float64) (float32, float32)) {
	ecs.ForEach(g.world, component.NavigationAgentComponent.Kind(), func(e ecs.Entity, na *component.NavigationAgent) {
		if na.Agent == nil || na.Agent.IsFinished() {
			return
		}
		t, ok := ecs.Get(g.world, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		px, py := toScreen(t.X, t.Z)
		for _, p := range na.Agent.Path() {
			x, y := toScreen(p.X, p.Z)
			vector.StrokeLine(screen, px, py, x, y, 1, colornames.Gold, false)
			px, py = x, y
		}
	})
}

func (g *Game) status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Level: %s    Tick: %d    FPS: %.1f\n", g.level.Name, g.world.Tick(), ebiten.ActualFPS())
	if !g.debug {
		return b.String()
	}
	ecs.ForEach2(g.world, component.MutantComponent.Kind(), component.AnimationTreeComponent.Kind(), func(e ecs.Entity, m *component.Mutant, tree *component.AnimationTree) {
		dist := "-"
		if m.Last.TargetKnown {
			dist = fmt.Sprintf("%.2f", m.Last.DistanceToTarget)
		}
		cooldown := 0.0
		if m.Agent != nil {
			cooldown = m.Agent.CooldownTimer()
		}
		fmt.Fprintf(&b, "%s: %s d=%s cd=%.2f clip=%s\n", m.Label, m.Last.State, dist, cooldown, tree.Tree.Current())
	})
	return b.String()
}

// viewTransform fits the level into the base resolution.
func (g *Game) viewTransform() (scale, offX, offY float64) {
	const margin = 40.0
	sx := (common.BaseWidth - 2*margin) / g.level.Width
	sy := (common.BaseHeight - 2*margin) / g.level.Depth
	scale = math.Min(sx, sy)
	offX = (common.BaseWidth - g.level.Width*scale) / 2
	offY = (common.BaseHeight - g.level.Depth*scale) / 2
	return scale, offX, offY
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			logger.Log.WithError(err).Warn("close prefab watcher")
		}
		g.watcher = nil
	}
}

func stateColor(s mutant.State) color.Color {
	switch s {
	case mutant.Chasing:
		return colornames.Orange
	case mutant.Attacking:
		return colornames.Crimson
	default:
		return colornames.Olivedrab
	}
}

func containsPanel(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
