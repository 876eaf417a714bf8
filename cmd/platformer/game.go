package main

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/diagnostics"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/system"
	"github.com/milk9111/platformer/world"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"
)

// errQuit ends the run loop cleanly.
var errQuit = errors.New("quit")

type Game struct {
	frames int
	debug  bool

	settings *config.Settings
	logger   zerolog.Logger

	input    *Input
	world    *world.World
	level    *levels.Level
	tuning   *prefabs.TuningSpec
	observer *diagnostics.Observer
	watcher  *prefabs.Watcher
	camX     float64
}

func NewGame(s *config.Settings, logger zerolog.Logger) (*Game, error) {
	tuning, err := prefabs.LoadTuningSpec(s.Tuning)
	if err != nil {
		return nil, err
	}
	lvl, err := levels.Load(s.Level)
	if err != nil {
		return nil, err
	}
	observer, err := diagnostics.NewObserver(logger, nil)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:    s.Debug,
		settings: s,
		logger:   logger,
		input:    NewInput(),
		level:    lvl,
		tuning:   tuning,
		observer: observer,
	}
	g.world = world.New(tuning.WorldConfig(), lvl.Layout(),
		world.WithLogger(logger),
		world.WithObserver(observer),
	)

	if s.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			logger.Warn().Err(err).Str("dir", prefabs.Dir).Msg("prefab hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	logger.Info().
		Str("level", lvl.Name).
		Str("tuning", tuning.Name).
		Int("platforms", len(lvl.Platforms)).
		Msg("game started")
	return g, nil
}

func (g *Game) Close() error {
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	if g.input.QuitPressed {
		return errQuit
	}
	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.input.RespawnPressed {
		g.world.Load(g.level.Layout())
	}
	g.pollReloads()

	g.world.Step(1000/float64(ebiten.TPS()), g.input.Intents)
	for _, evt := range g.world.Events().Drain() {
		g.logEvent(evt)
	}
	g.followActor()
	return nil
}

func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn().Err(err).Msg("prefab watcher")
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if name != g.settings.Tuning {
		g.logger.Debug().Str("file", name).Msg("ignoring prefab change")
		return
	}
	tuning, err := prefabs.LoadTuningSpec(name)
	if err != nil {
		g.logger.Error().Err(err).Msg("reload tuning")
		return
	}
	g.tuning = tuning
	g.world.SetConfig(tuning.WorldConfig())
	g.logger.Info().Str("file", name).Str("mode", tuning.Validation.Mode).Msg("tuning reloaded")
}

func (g *Game) logEvent(evt world.Event) {
	l := g.logger.Debug().Str("event", string(evt.Kind)).Dur("at", evt.Time)
	switch data := evt.Data.(type) {
	case component.Pickup:
		l = l.Str("kind", string(data.Kind))
	case system.JumpDecision:
		l = l.Bool("allowed", data.Allowed).Str("reason", data.Reason)
	case system.InvalidCollision:
		l = l.Str("failed", data.Failed.String()).Bool("recovered", data.Recovered)
	}
	l.Msg("world event")
}

// cameraSmoothing is the fraction of the remaining distance the camera
// covers per frame.
const cameraSmoothing = 0.2

// followActor scrolls horizontally, keeping the view inside the level.
func (g *Game) followActor() {
	a := g.world.Actor
	bounds := g.level.Bounds()
	w := float64(g.settings.Window.Width)
	maxX := bounds.R - w
	if maxX < bounds.L {
		maxX = bounds.L
	}
	target := cp.Clamp(a.Position.X+a.Size.Width/2-w/2, bounds.L, maxX)
	g.camX = common.Lerp(g.camX, target, cameraSmoothing)
}

func (g *Game) Draw(screen *ebiten.Image) {
	colors := g.tuning.Colors
	screen.Fill(colors.Background.Or(colornames.Black))

	for _, o := range g.world.Obstacles {
		g.fillRect(screen, o.Position.X, o.Position.Y, o.Size.Width, o.Size.Height, colors.Platform.Or(colornames.Slategray))
	}
	for _, p := range g.world.Pickups {
		if p.Collected {
			continue
		}
		g.fillRect(screen, p.Position.X, p.Position.Y, p.Size.Width, p.Size.Height, colors.Pickup.Or(colornames.Lightgreen))
	}

	a := g.world.Actor
	actorColor := colors.Actor.Or(colornames.Crimson)
	if a.Invincible() && (g.frames/4)%2 == 0 {
		actorColor = colornames.White
	}
	g.fillRect(screen, a.Position.X, a.Position.Y, a.Size.Width, a.Size.Height, actorColor)

	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x-g.camX), float32(y), float32(w), float32(h), c, false)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	a := g.world.Actor
	ground := g.world.Ground()
	stats := g.world.Stats()
	tally := g.observer.Tally()

	// Ground line used by the position heuristic.
	line := g.world.Config().Ground.GroundLine()
	vector.StrokeLine(screen, 0, float32(line), float32(g.settings.Window.Width), float32(line), 1, colornames.Gold, false)
	vector.StrokeRect(screen, float32(a.Position.X-g.camX), float32(a.Position.Y), float32(a.Size.Width), float32(a.Size.Height), 1, colornames.Yellow, false)

	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  t=%v\n", ebiten.ActualFPS(), g.world.Now())
	fmt.Fprintf(&b, "state=%s grounded=%t pos=(%.1f, %.1f) vel=(%.1f, %.1f)\n",
		a.State, a.IsOnGround, a.Position.X, a.Position.Y, a.Velocity.X, a.Velocity.Y)
	fmt.Fprintf(&b, "ground=%t confidence=%.2f physics=%t position=%t velocity=%t\n",
		ground.IsOnGround, ground.Confidence, ground.Signals.Physics, ground.Signals.Position, ground.Signals.Velocity)
	if d, ok := g.world.LastJump(); ok {
		fmt.Fprintf(&b, "jump allowed=%t reason=%s\n", d.Allowed, d.Reason)
	}
	fmt.Fprintf(&b, "boost=x%.2f (%v) invincible=%v\n", a.JumpBoostMultiplier, a.BoostRemaining, a.InvincibleRemaining)
	fmt.Fprintf(&b, "invalid=%d velocity=%d overlap=%d position=%d movement=%d recovered=%d\n",
		stats.Total, stats.Velocity, stats.Overlap, stats.Position, stats.Movement, stats.Recovered)
	fmt.Fprintf(&b, "jumps=%d %v\n", tally.Jumps, tally.JumpsByReason)
	ebitenutil.DebugPrint(screen, b.String())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}
