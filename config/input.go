package config

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionBasicAttack
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[string]ActionID{
	"move_up":      ActionMoveUp,
	"move_down":    ActionMoveDown,
	"move_left":    ActionMoveLeft,
	"move_right":   ActionMoveRight,
	"basic_attack": ActionBasicAttack,
	"pause":        ActionPause,
	"menu_up":      ActionMenuUp,
	"menu_down":    ActionMenuDown,
	"menu_left":    ActionMenuLeft,
	"menu_right":   ActionMenuRight,
	"menu_select":  ActionMenuSelect,
	"menu_back":    ActionMenuBack,
	"toggle_debug": ActionToggleDebug,
}

func (a *ActionID) UnmarshalText(text []byte) error {
	id, ok := actionNames[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("unknown action %q", text)
	}
	*a = id
	return nil
}

// Gamepad buttons by the names used in input.yaml. They follow the standard
// gamepad layout cluster and position.
var gamepadButtonNames = map[string]ebiten.StandardGamepadButton{
	"right_bottom":       ebiten.StandardGamepadButtonRightBottom,
	"right_right":        ebiten.StandardGamepadButtonRightRight,
	"right_left":         ebiten.StandardGamepadButtonRightLeft,
	"right_top":          ebiten.StandardGamepadButtonRightTop,
	"front_top_left":     ebiten.StandardGamepadButtonFrontTopLeft,
	"front_top_right":    ebiten.StandardGamepadButtonFrontTopRight,
	"front_bottom_left":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"front_bottom_right": ebiten.StandardGamepadButtonFrontBottomRight,
	"center_left":        ebiten.StandardGamepadButtonCenterLeft,
	"center_right":       ebiten.StandardGamepadButtonCenterRight,
	"left_top":           ebiten.StandardGamepadButtonLeftTop,
	"left_bottom":        ebiten.StandardGamepadButtonLeftBottom,
	"left_left":          ebiten.StandardGamepadButtonLeftLeft,
	"left_right":         ebiten.StandardGamepadButtonLeftRight,
}

var mouseButtonNames = map[string]ebiten.MouseButton{
	"left":   ebiten.MouseButtonLeft,
	"right":  ebiten.MouseButtonRight,
	"middle": ebiten.MouseButtonMiddle,
}

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
	MouseButtons           []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

type keyEntry struct {
	Key    ebiten.Key `yaml:"key"`
	Action ActionID   `yaml:"action"`
}

type buttonEntry struct {
	Button string   `yaml:"button"`
	Action ActionID `yaml:"action"`
}

type inputDoc struct {
	MenuKeyboard   []keyEntry    `yaml:"menu_keyboard"`
	MenuGamepad    []buttonEntry `yaml:"menu_gamepad"`
	PlayerKeyboard []keyEntry    `yaml:"player_keyboard"`
	PlayerGamepad  []buttonEntry `yaml:"player_gamepad"`
	PlayerMouse    []buttonEntry `yaml:"player_mouse"`
}

// LoadInputBindings replaces Input.Bindings with the bindings in raw.
// Key names are decoded by ebiten.Key.UnmarshalText.
func LoadInputBindings(raw []byte) error {
	var doc inputDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse input bindings: %w", err)
	}

	bindings := make(map[ActionID]InputBinding)
	addKeys := func(entries []keyEntry) {
		for _, e := range entries {
			b := bindings[e.Action]
			b.Keys = append(b.Keys, e.Key)
			bindings[e.Action] = b
		}
	}
	addKeys(doc.MenuKeyboard)
	addKeys(doc.PlayerKeyboard)

	for _, entries := range [][]buttonEntry{doc.MenuGamepad, doc.PlayerGamepad} {
		for _, e := range entries {
			btn, ok := gamepadButtonNames[e.Button]
			if !ok {
				return fmt.Errorf("unknown gamepad button %q", e.Button)
			}
			b := bindings[e.Action]
			b.StandardGamepadButtons = append(b.StandardGamepadButtons, btn)
			bindings[e.Action] = b
		}
	}

	for _, e := range doc.PlayerMouse {
		btn, ok := mouseButtonNames[e.Button]
		if !ok {
			return fmt.Errorf("unknown mouse button %q", e.Button)
		}
		b := bindings[e.Action]
		b.MouseButtons = append(b.MouseButtons, btn)
		bindings[e.Action] = b
	}

	Input.Bindings = bindings
	return nil
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp:      {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
			ActionMoveDown:    {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
			ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
			ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
			ActionBasicAttack: {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionPause:       {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionMenuUp:      {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
			ActionMenuDown:    {Keys: []ebiten.Key{ebiten.KeyArrowDown}},
			ActionMenuSelect:  {Keys: []ebiten.Key{ebiten.KeyEnter}},
			ActionMenuBack:    {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}
