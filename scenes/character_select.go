package scenes

import (
	"sync"

	"github.com/automoto/starwave/assets"
	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/logging"
	"github.com/automoto/starwave/systems"
	"github.com/automoto/starwave/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CharacterSelectScene lets the player pick a ship using ebitenui
type CharacterSelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	characterUI  *ui.CharacterUI
	selection    *components.CharacterSelectData
	once         sync.Once
	err          error
}

// NewCharacterSelectScene creates a new character selection scene
func NewCharacterSelectScene(sc SceneChanger) *CharacterSelectScene {
	return &CharacterSelectScene{sceneChanger: sc}
}

func (cs *CharacterSelectScene) Update() {
	cs.once.Do(cs.configure)
	if cs.err != nil {
		return
	}

	// Keyboard and gamepad navigation
	cs.ecs.Update()

	// Update ebitenui
	cs.characterUI.Update()

	if cs.selection.Confirmed {
		cs.launch()
	}
}

func (cs *CharacterSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.CharacterSelect.BackgroundColor)

	if cs.ecs == nil || cs.err != nil {
		return
	}

	// Draw ebitenui
	cs.characterUI.UI.Draw(screen)
}

func (cs *CharacterSelectScene) configure() {
	cs.ecs = ecs.NewECS(donburi.NewWorld())

	db, err := assets.LoadDatabase()
	if err != nil {
		cs.fail(err)
		return
	}

	progress := systems.LoadProgress()
	cs.selection = &components.CharacterSelectData{}
	systems.InitCharacterSelect(cs.selection, db, progress.LastCharacter)

	cs.characterUI, err = ui.NewCharacterUI(cs.selection, progress.BestScore, nil)
	if err != nil {
		cs.fail(err)
		return
	}

	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(systems.NewUpdateCharacterSelect(cs.selection, cs.characterUI.UpdateUI))
}

func (cs *CharacterSelectScene) fail(err error) {
	cs.err = err
	logging.L().Errorw("character selection unavailable", "error", err)
}

// launch remembers the chosen ship and starts the arena.
func (cs *CharacterSelectScene) launch() {
	c, ok := systems.SelectedCharacter(cs.selection)
	if !ok {
		cs.selection.Confirmed = false
		return
	}
	systems.RememberCharacter(c.Name)
	cs.sceneChanger.ChangeScene(NewWorldScene(cs.sceneChanger, c))
}

// Err reports a failure that left the scene unusable.
func (cs *CharacterSelectScene) Err() error {
	return cs.err
}
