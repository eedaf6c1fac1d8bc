package main

import (
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/padhop/levels"
	"github.com/milk9111/padhop/sim"
	"go.uber.org/zap"
)

type Game struct {
	sim       *sim.Simulation
	levelName string
	watcher   *levels.Watcher
	logger    *zap.Logger
	debug     bool

	paused  bool
	pauseUI *ebitenui.UI
	hud     *HUD
}

func NewGame(simulation *sim.Simulation, levelName string, watcher *levels.Watcher, logger *zap.Logger, debug bool) *Game {
	g := &Game{
		sim:       simulation,
		levelName: levelName,
		watcher:   watcher,
		logger:    logger,
		debug:     debug,
		hud:       NewHUD(),
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

// Update runs at most one simulation tick. Reloads and pausing happen here,
// between ticks, never inside one.
func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.sim.Tick(ReadIntent())
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			if filepath.Base(name) != filepath.Base(levelsFile(g.levelName)) {
				continue
			}
			g.restart()
		case err := <-g.watcher.Errors:
			g.logger.Warn("level watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) restart() {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		g.logger.Warn("reload level", zap.String("level", g.levelName), zap.Error(err))
		return
	}
	if err := g.sim.Reload(lvl); err != nil {
		return
	}
	g.logger.Info("level reloaded", zap.String("level", g.levelName))
}

func (g *Game) Draw(screen *ebiten.Image) {
	DrawWorld(screen, g.sim, g.debug)
	g.hud.Draw(screen, g.sim)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	win := g.sim.Level().Window
	return win.Width, win.Height
}

func levelsFile(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".yaml"
	}
	return name
}
