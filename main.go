package main

import (
	"flag"
	"image"

	"github.com/automoto/starwave/assets"
	"github.com/automoto/starwave/config"
	"github.com/automoto/starwave/fonts"
	"github.com/automoto/starwave/logging"
	"github.com/automoto/starwave/scenes"
	"github.com/automoto/starwave/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// failer is implemented by scenes that can end up unusable, e.g. when game
// data fails to load.
type failer interface {
	Err() error
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	start, err := scenes.NewStartScene(g)
	if err != nil {
		return nil, err
	}
	g.ChangeScene(start)
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	if f, ok := g.scene.(failer); ok {
		return f.Err()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", config.Debug.Enabled, "enable debug overlay and development logging")
	skipMenu := flag.Bool("skip-menu", config.Debug.SkipMenu, "start in the arena without character selection")
	character := flag.String("character", config.Debug.Character, "ship to fly when skipping the menu")
	logLevel := flag.String("log-level", "info", "minimum log level")
	flag.Parse()

	config.Debug.Enabled = *debug
	config.Debug.SkipMenu = *skipMenu
	config.Debug.Character = *character

	if err := logging.Init(logging.Config{Development: *debug, Level: *logLevel}); err != nil {
		panic(err)
	}
	defer logging.Sync()
	log := logging.L()

	bindings, err := assets.InputBindings()
	if err != nil {
		log.Fatalw("Failed to read input bindings", "error", err)
	}
	if err := config.LoadInputBindings(bindings); err != nil {
		log.Fatalw("Failed to load input bindings", "error", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence; the game still runs without it
	if err := systems.InitPersistence(); err != nil {
		log.Warnw("Could not initialize persistence", "error", err)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatalw("Failed to start game", "error", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalw("Game exited with error", "error", err)
	}
}
