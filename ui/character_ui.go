package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// CharacterUI holds the ebitenui interface for character selection
type CharacterUI struct {
	UI        *ebitenui.UI
	Selection *components.CharacterSelectData

	// Callbacks
	OnStart func()

	// Widget references for updates
	nameLabel        *widget.Label
	descriptionLabel *widget.Label
	statsLabel       *widget.Label
	bestLabel        *widget.Label

	best int

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewCharacterUI creates a new character selection UI with ebitenui
func NewCharacterUI(sel *components.CharacterSelectData, best int, onStart func()) (*CharacterUI, error) {
	cui := &CharacterUI{
		Selection: sel,
		OnStart:   onStart,
		best:      best,
	}

	if err := cui.loadFonts(); err != nil {
		return nil, err
	}
	cui.buildUI()

	return cui, nil
}

func (cui *CharacterUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	// Smaller fonts to fit 640x360 screen
	cui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	cui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	cui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
	return nil
}

func (cui *CharacterUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.CharacterSelect.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CHOOSE YOUR SHIP", &cui.titleFace, &widget.LabelColor{
			Idle: cfg.CharacterSelect.TitleColor,
		}),
	))

	contentContainer.AddChild(cui.buildPicker())

	cui.descriptionLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(cui.descriptionLabel)

	cui.statsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	contentContainer.AddChild(cui.statsLabel)

	cui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 150, 255},
		}),
	)
	contentContainer.AddChild(cui.bestLabel)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 24)),
		widget.ButtonOpts.Image(cui.startButtonImage()),
		widget.ButtonOpts.Text("LAUNCH", &cui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cui.Selection.Confirmed = true
			if cui.OnStart != nil {
				cui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startButton)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Arrows: Choose   Enter: Launch", &cui.smallFace, &widget.LabelColor{
			Idle: cfg.CharacterSelect.TextColorNormal,
		}),
	))

	rootContainer.AddChild(contentContainer)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildPicker builds the "< name >" row.
func (cui *CharacterUI) buildPicker() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	row.AddChild(cui.arrowButton("<", -1))

	cui.nameLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.normalFace, &widget.LabelColor{
			Idle: cfg.CharacterSelect.TextColorSelected,
		}),
	)
	row.AddChild(cui.nameLabel)

	row.AddChild(cui.arrowButton(">", 1))
	return row
}

func (cui *CharacterUI) arrowButton(label string, dir int) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(24, 18)),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text(label, &cui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.CycleCharacter(cui.Selection, dir)
			cui.UpdateUI()
		}),
	)
}

func (cui *CharacterUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (cui *CharacterUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 120, 60, 255})
	hover := image.NewNineSliceColor(color.RGBA{50, 150, 75, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 90, 45, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the labels from the current selection.
func (cui *CharacterUI) UpdateUI() {
	c, ok := systems.SelectedCharacter(cui.Selection)
	if !ok {
		return
	}

	cui.nameLabel.Label = c.Name
	cui.descriptionLabel.Label = c.Description
	cui.statsLabel.Label = systems.GetCharacterStats(c)
	if cui.best > 0 {
		cui.bestLabel.Label = fmt.Sprintf("Best score: %d", cui.best)
	}
}

// Update calls the UI's Update method
func (cui *CharacterUI) Update() {
	cui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !cui.initialized {
		cui.initialized = true
		cui.UpdateUI()
	}
}
