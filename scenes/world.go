package scenes

import (
	"errors"
	"image/color"
	"sync"

	"github.com/automoto/starwave/assets"
	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/logging"
	"github.com/automoto/starwave/shared/gamedata"
	"github.com/automoto/starwave/systems"
	"github.com/automoto/starwave/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var errNoPlayerSpawn = errors.New("no player spawn points defined in map")

// WorldScene runs a single attempt at the arena with one ship.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	character    gamedata.Character
	runID        string
	once         sync.Once
	err          error
}

// NewWorldScene creates a new arena scene flown with character c.
func NewWorldScene(sc SceneChanger, c gamedata.Character) *WorldScene {
	return &WorldScene{sceneChanger: sc, character: c}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return
	}
	ws.ecs.Update()

	if over, victory := systems.IsRunOver(ws.ecs); over {
		ws.finish(victory)
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil || ws.err != nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	if err := ws.build(); err != nil {
		ws.err = err
		logging.L().Errorw("arena setup failed", "error", err)
	}
}

func (ws *WorldScene) build() error {
	arena, err := assets.LoadArena()
	if err != nil {
		return err
	}
	db, err := assets.LoadDatabase()
	if err != nil {
		return err
	}
	if len(arena.PlayerSpawn) == 0 {
		return errNoPlayerSpawn
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and run complete checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerWeapon))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMobs))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMobWeapons))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMobSpawners))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRun))
	ecs.AddSystem(systems.WithGameplayChecks(systems.ProcessEvents))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhaseBanner))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawShapes)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPhaseBanner)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ws.ecs = ecs

	// The space must exist before anything with a collider is created.
	factory.CreateSpace(ws.ecs, arena.Width, arena.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateLevel(ws.ecs, arena, db)

	spawn := arena.PlayerSpawn[0]
	factory.CreatePlayer(ws.ecs, spawn.X, spawn.Y, ws.character)

	runEntry, err := factory.CreateRun(ws.ecs, db.Phases, systems.LoadProgress().BestScore)
	if err != nil {
		return err
	}
	ws.runID = components.Run.Get(runEntry).ID

	systems.SubscribeSpawners(ws.ecs)

	logging.L().Infow("run started", "run", ws.runID, "character", ws.character.Name, "phases", len(db.Phases))
	return nil
}

// finish records the run and moves to the game over screen.
func (ws *WorldScene) finish(victory bool) {
	score := systems.RunScore(ws.ecs)
	best := systems.RecordRun(score)
	logging.L().Infow("run finished", "run", ws.runID, "victory", victory, "score", score, "best", best)

	ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.character, victory, score, best))
}

// Err reports a failure that left the scene unusable.
func (ws *WorldScene) Err() error {
	return ws.err
}
