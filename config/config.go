package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers.
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// ArenaConfig controls the collision space and off-screen margins.
type ArenaConfig struct {
	CellSize int
	// Entities further than this outside the arena are removed.
	DespawnMargin float64
}

// PlayerConfig contains player tuning that is not per character.
type PlayerConfig struct {
	// Seconds of invulnerability after touching a mob.
	ContactCooldown float64
	// Fraction of the player's velocity added to projectiles when the
	// character inherits velocity.
	VelocityInheritance float64
}

// ProjectileShape is the drawn size of one projectile kind.
type ProjectileShape struct {
	Width, Height float64
}

// ProjectileConfig contains projectile sizes and colours.
type ProjectileConfig struct {
	Shapes map[string]ProjectileShape
	Ally   color.RGBA
	Enemy  color.RGBA
}

// MobConfig contains mob tuning shared by every mob type.
type MobConfig struct {
	// Mobs moving to the centre stop within this many pixels of it.
	CenterTolerance float64
}

// PhaseUIConfig controls the phase banner fade.
type PhaseUIConfig struct {
	FadeIn  float32
	Hold    float32
	FadeOut float32
	Y       float64
	Color   color.RGBA
}

// HUDConfig contains HUD layout values.
type HUDConfig struct {
	Margin          float64
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
	ReloadBarHeight float64
	ReloadBarFg     color.RGBA
	TextColor       color.RGBA
}

// MenuConfig contains menu screen configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled   bool   // Draw colliders and log at debug level
	SkipMenu  bool   // Skip character selection and go directly to the arena
	Character string // Character used when skipping the menu
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Player PlayerConfig
var Projectile ProjectileConfig
var Mob MobConfig
var PhaseUI PhaseUIConfig
var HUD HUDConfig
var CharacterSelect MenuConfig
var GameOver MenuConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Space        = color.RGBA{R: 8, G: 8, B: 20, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Title:  "Starwave",
	}

	Arena = ArenaConfig{
		CellSize:      16,
		DespawnMargin: 64,
	}

	Player = PlayerConfig{
		ContactCooldown:     1.0,
		VelocityInheritance: 0.5,
	}

	Projectile = ProjectileConfig{
		Shapes: map[string]ProjectileShape{
			"blast":  {Width: 4, Height: 8},
			"bullet": {Width: 5, Height: 5},
		},
		Ally:  BrightYellow,
		Enemy: LightRed,
	}

	Mob = MobConfig{
		CenterTolerance: 4,
	}

	PhaseUI = PhaseUIConfig{
		FadeIn:  0.4,
		Hold:    1.2,
		FadeOut: 0.6,
		Y:       140,
		Color:   White,
	}

	HUD = HUDConfig{
		Margin:          8,
		HealthBarWidth:  130,
		HealthBarHeight: 10,
		HealthBarBg:     color.RGBA{40, 40, 40, 255},
		HealthBarFg:     color.RGBA{40, 220, 40, 255},
		ReloadBarHeight: 3,
		ReloadBarFg:     LightBlue,
		TextColor:       White,
	}

	CharacterSelect = MenuConfig{
		BackgroundColor:   color.RGBA{20, 20, 30, 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
	}

	GameOver = MenuConfig{
		BackgroundColor:   color.RGBA{0, 0, 0, 255},
		TitleColor:        Red,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            110,
		MenuStartY:        190,
		MenuItemHeight:    20,
		MenuItemGap:       10,
		MenuOptions:       []string{"Retry", "Change Ship"},
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Hint:         "Paused. Press Esc to resume",
	}
}
