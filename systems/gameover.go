package systems

import (
	"fmt"

	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}, createSelectScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		if !gameOver.Armed {
			gameOver.Armed = !GetAction(input, cfg.ActionMenuSelect).Pressed
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverChangeShip) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createWorldScene())
			case components.GameOverChangeShip:
				sceneChanger.ChangeScene(createSelectScene())
			}
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

	title := "SHIP DESTROYED"
	titleColor := cfg.GameOver.TitleColor
	if gameOver.Victory {
		title = "SECTOR CLEARED"
		titleColor = cfg.BrightGreen
	}
	drawCentered(screen, title, fonts.Title, cfg.GameOver.TitleY, titleColor)

	scoreLine := fmt.Sprintf("Score %d", gameOver.Score)
	if gameOver.Score > 0 && gameOver.Score >= gameOver.Best {
		scoreLine += "  NEW BEST"
	} else {
		scoreLine += fmt.Sprintf("  Best %d", gameOver.Best)
	}
	drawCentered(screen, scoreLine, fonts.Regular, cfg.GameOver.TitleY+36, cfg.White)

	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}
		drawCentered(screen, option, fonts.Bold, y+cfg.GameOver.MenuItemHeight, textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}
