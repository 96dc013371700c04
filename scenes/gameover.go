package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScene shows the run result and offers a restart.
type GameOverScene struct {
	sceneChanger SceneChanger
	cleared      bool
	cause        string
	score        int
	distance     float64
}

// NewGameOverScene creates the end-of-run screen.
func NewGameOverScene(sc SceneChanger, cleared bool, cause string, score int, distance float64) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		cleared:      cleared,
		cause:        cause,
		score:        score,
		distance:     distance,
	}
}

func (gs *GameOverScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs.sceneChanger.ChangeScene(NewRunScene(gs.sceneChanger))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	title := "GAME OVER"
	if gs.cleared {
		title = "RUN CLEARED"
	}
	ebitenutil.DebugPrintAt(screen, title, 280, 120)
	if !gs.cleared && gs.cause != "" {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("you hit a %s", gs.cause), 264, 140)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("distance %.1f   score %d", gs.distance, gs.score), 240, 160)
	ebitenutil.DebugPrintAt(screen, "press Enter to run again", 248, 200)
}
