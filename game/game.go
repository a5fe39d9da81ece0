package game

import (
	"errors"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/knotsaver/config"
	"github.com/meghashyamc/knotsaver/engine"
	"github.com/meghashyamc/knotsaver/geometry"
	"github.com/meghashyamc/knotsaver/logger"
)

// Game hosts the engine inside an ebiten window: input becomes engine
// commands, every tick is one engine frame.
type Game struct {
	cfg    *config.Config
	engine *engine.Engine
	logger logger.Logger
	keys   []ebiten.Key
}

func NewGame(cfg *config.Config) (*Game, error) {
	log := logger.New(cfg.GetLogLevel())

	opts := engine.Options{
		Bounds:      geometry.NewBounds(cfg.GetWindowWidth(), cfg.GetWindowHeight()),
		Samples:     cfg.GetSamples(),
		MaxSpeed:    cfg.GetMaxSpeed(),
		StartPaused: cfg.GetStartPaused(),
		PointWidth:  cfg.GetPointWidth(),
		LineWidth:   cfg.GetLineWidth(),
	}

	g := &Game{
		cfg:    cfg,
		engine: engine.New(opts, log, rand.New(rand.NewSource(time.Now().UnixNano()))),
		logger: log,
	}

	g.logger.Info("game initialized", "window_width", cfg.GetWindowWidth(), "window_height", cfg.GetWindowHeight())
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		g.logger.Info("game closed")
		return nil
	}
	return err
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, cmd := range commandsFor(g.keys) {
		g.engine.Execute(cmd)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.engine.AddPoint(getCurrentMousePosition())
	}

	g.engine.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	if g.engine.ShowHelp() {
		g.drawHelp(screen, g.engine.Help())
		return
	}

	g.engine.Render(screenRenderer{screen: screen})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight()
}
