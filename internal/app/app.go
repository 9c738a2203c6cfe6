//go:build ebiten

package app

import (
	"time"

	"occgrid/internal/grid"
	"occgrid/internal/logger"
	"occgrid/internal/palette"
	"occgrid/internal/render"
	"occgrid/internal/source"
	"occgrid/internal/texcache"
	"occgrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

// Game adapts a grid source to the ebiten.Game interface. Messages are
// published at the configured rate while frames are drawn every tick, so
// most frames reuse the cached texture.
type Game struct {
	cfg     *Config
	src     source.Source
	cache   *texcache.Cache
	painter *render.GridPainter
	hud     *ui.HUD
	cadence *source.Cadence

	msg    *grid.Message
	paused bool
	seed   int64
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) (*Game, error) {
	table, src, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	painter, err := render.NewGridPainter(&table)
	if err != nil {
		return nil, err
	}
	hud := ui.NewHUD(hudWidth)
	hud.SetPalette(&table)
	g := &Game{
		cfg:     cfg,
		src:     src,
		cache:   texcache.New(render.NewDevice()),
		painter: painter,
		hud:     hud,
		cadence: source.NewCadence(cfg.Rate),
		seed:    cfg.Seed,
	}
	g.msg = src.Message()
	return g, nil
}

// Reset reinitializes the source with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.src.Reset(seed)
	g.msg = g.src.Message()
	logger.WithComponent("app").WithField("seed", seed).Info("source reset")
}

// Update handles input and advances the source when a message is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.togglePalette()
	}

	if !g.paused && g.cadence.Ready() {
		g.src.Step()
		g.msg = g.src.Message()
	}

	g.hud.Update(ui.Status{
		Source:  g.src.Name(),
		Palette: g.cfg.Palette,
		Message: g.msg,
		Cache:   g.cache.Stats(),
		Paused:  g.paused,
	})
	return nil
}

// Draw renders the latest grid message through the texture cache.
func (g *Game) Draw(screen *ebiten.Image) {
	tex := g.cache.Get(g.msg).(*render.Texture)
	g.painter.Draw(screen, tex, g.cfg.Scale)
	s := g.src.Size()
	g.hud.Draw(screen, s.W*g.cfg.Scale, s.H*g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.src.Size()
	return s.W*g.cfg.Scale + g.hud.Width(), s.H * g.cfg.Scale
}

// Close releases the cached textures.
func (g *Game) Close() {
	g.cache.Dispose()
}

func (g *Game) togglePalette() {
	name := "map"
	if g.cfg.Palette == "map" {
		name = "costmap"
	}
	table, err := palette.ByName(name, g.cfg.Overrides)
	if err != nil {
		logger.WithComponent("app").WithError(err).Warn("palette switch failed")
		return
	}
	g.cfg.Palette = name
	g.painter.SetPalette(&table)
	g.hud.SetPalette(&table)
}
