package main

import (
	"path/filepath"
	"strings"

	"github.com/milk9111/dasher/ecs/entity"
	"github.com/milk9111/dasher/ecs/render"
	"github.com/milk9111/dasher/levels"
	"github.com/milk9111/dasher/logging"
	"github.com/milk9111/dasher/prefabs"
)

// drainReloads applies every pending file change without blocking.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			logging.Log.Warnw("watch error", "error", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	base := filepath.Base(path)
	switch {
	case strings.EqualFold(base, prefabs.PlayerFile):
		if err := g.reloadPlayer(); err != nil {
			logging.Log.Warnw("reload player", "file", path, "error", err)
			return
		}
	case strings.EqualFold(base, levels.FileName(g.levelName)):
		if err := g.reloadLevel(); err != nil {
			logging.Log.Warnw("reload level", "file", path, "error", err)
			return
		}
	default:
		return
	}
	logging.Log.Infow("reloaded", "file", path)
}

// reloadPlayer reapplies tuning. Position and dash state carry over.
func (g *Game) reloadPlayer() error {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	if err := entity.ApplyPlayerSpec(g.world, g.player, spec); err != nil {
		return err
	}
	g.anim.SetPeriod(spec.Animation.Interval())
	render.Forget()
	return nil
}

// reloadLevel rebuilds the arena and obstacles. The player is not moved,
// even if it now overlaps a new obstacle.
func (g *Game) reloadLevel() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return err
	}
	return entity.LoadLevelToWorld(g.world, lvl)
}
