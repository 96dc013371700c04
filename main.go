package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/gridrunner/config"
	"github.com/automoto/gridrunner/scenes"
	"github.com/automoto/gridrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewRunScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
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
	flag.StringVar(&config.Debug.ConfigPath, "config", "", "YAML tuning override file")
	flag.BoolVar(&config.Debug.WatchConfig, "watch", false, "hot-reload the tuning file on change")
	flag.Int64Var(&config.Stage.TemplateSeed, "seed", config.Stage.TemplateSeed, "template selection seed")
	flag.Parse()

	if config.Debug.ConfigPath != "" {
		if err := config.LoadFile(config.Debug.ConfigPath); err != nil {
			log.Printf("tuning file ignored: %v", err)
		} else if config.Debug.WatchConfig {
			closeWatch, err := config.WatchFile(config.Debug.ConfigPath)
			if err != nil {
				log.Printf("tuning watch unavailable: %v", err)
			} else {
				defer closeWatch()
			}
		}
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("running without persisted records: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("gridrunner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
