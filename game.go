package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/ecs/entity"
	"github.com/milk9111/dasher/ecs/system"
	"github.com/milk9111/dasher/input"
	"github.com/milk9111/dasher/levels"
	"github.com/milk9111/dasher/logging"
	"github.com/milk9111/dasher/prefabs"
)

type Game struct {
	frames int
	debug  bool

	levelName string
	world     *ecs.World
	player    ecs.Entity
	render    *system.RenderSystem
	anim      *system.AnimationSystem

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(w, lvl); err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelName, err)
	}
	player, err := entity.NewPlayer(w, spec)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:     debug,
		levelName: levelName,
		world:     w,
		player:    player,
		render:    system.NewRenderSystem(debug),
		anim:      system.NewAnimationSystem(spec.Animation.Interval()),
	}

	// Cooldowns tick before dash so a cooldown ending this tick can be used
	// this tick.
	w.AddSystem(system.NewInputSystem(input.Ebiten{}))
	w.AddSystem(system.NewCooldownSystem())
	w.AddSystem(system.NewDashSystem())
	w.AddSystem(system.NewTeleportSystem())
	w.AddSystem(system.NewMotionSystem())
	w.AddSystem(g.anim)
	w.AddSystem(system.NewEventLogSystem())

	g.pauseUI = NewPauseUI(g)
	g.anim.Start()

	if watch {
		g.watcher, err = prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			logging.Log.Warnw("hot reload disabled", "error", err)
		}
	}

	logging.Log.Infow("game ready", "level", levelName, "player", spec.Name)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}

	g.drainReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.Update()
	return nil
}

// setPaused freezes the simulation. The animation schedule is cancelled so
// resuming starts a fresh cadence.
func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if paused {
		g.anim.Stop()
	} else {
		g.anim.Start()
	}
	logging.Log.Debugw("pause toggled", "paused", paused)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) debugText() string {
	s := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())
	if t, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind()); ok {
		s += fmt.Sprintf("\npos: %.1f, %.1f", t.X, t.Y)
	}
	if m, ok := ecs.Get(g.world, g.player, component.MoverComponent.Kind()); ok {
		s += fmt.Sprintf("\ndir: %.3f, %.3f moving=%v", m.Direction.X, m.Direction.Y, m.Moving)
	}
	if d, ok := ecs.Get(g.world, g.player, component.DashComponent.Kind()); ok {
		s += fmt.Sprintf("\ndash: %v", d.Available)
	}
	if cd, ok := ecs.Get(g.world, g.player, component.CooldownComponent.Kind()); ok {
		s += fmt.Sprintf(" (%s)", cd.Remaining)
	}
	return s
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the file watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			logging.Log.Warnw("close watcher", "error", err)
		}
	}
}
