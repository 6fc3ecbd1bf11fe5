package ui

import (
	"image/color"

	"LocalWhiteboard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var swatchColors = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 180, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 200, A: 255}, // Yellow
}

// Actions the toolbar needs beyond the controller itself.
type toolbarActions struct {
	chooseColor func()
	export      func()
	chat        func()
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget, actions toolbarActions) fyne.CanvasObject {
	ctrl := board.Controller()
	tool := func(t state.Tool) func() {
		return func() { ctrl.SelectTool(t) }
	}

	buttons := container.NewVBox(
		widget.NewButtonWithIcon("Pen", theme.DocumentCreateIcon(), tool(state.ToolPen)),
		widget.NewButtonWithIcon("Eraser", theme.ContentClearIcon(), tool(state.ToolEraser)),
		widget.NewButton("Arrow", tool(state.ToolArrow)),
		widget.NewButton("Rectangle", tool(state.ToolRectangle)),
		widget.NewButton("Oval", tool(state.ToolOval)),
		widget.NewButtonWithIcon("Color", theme.ColorPaletteIcon(), actions.chooseColor),
		widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), actions.export),
		widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), ctrl.ClearAll),
		widget.NewButtonWithIcon("Chat with AI", theme.MailComposeIcon(), actions.chat),
	)

	// --- Color Palette ---
	swatches := make([]fyne.CanvasObject, 0, len(swatchColors))
	for _, c := range swatchColors {
		swatches = append(swatches, newColorSwatch(c, ctrl.SelectColor))
	}
	colorBox := container.NewGridWithColumns(len(swatches), swatches...)

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(float64(state.MinWidth), float64(state.MaxWidth))
	strokeSlider.SetValue(float64(ctrl.Style().Width))
	strokeSlider.OnChanged = func(val float64) {
		ctrl.SetWidth(float32(val))
	}

	return container.NewVBox(
		buttons,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		strokeSlider,
		layout.NewSpacer(),
	)
}
