package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/shared/gamedata"
	"github.com/automoto/starwave/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the result of a run
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	character    gamedata.Character
	result       components.GameOverData
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, c gamedata.Character, victory bool, score, best int) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		character:    c,
		result: components.GameOverData{
			Victory: victory,
			Score:   score,
			Best:    best,
		},
	}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	*systems.GetOrCreateGameOver(gs.ecs) = gs.result

	createSelectScene := func() interface{} {
		return NewCharacterSelectScene(gs.sceneChanger)
	}

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, worldFactory(gs.sceneChanger, gs.character), createSelectScene))

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
