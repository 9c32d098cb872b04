package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"artparty/internal/editor"
	"artparty/internal/raster"
)

// palette is the default set of swatch colors offered in the toolbar.
var palette = []raster.Token{
	"#000000", "#ffffff", "#e74c3c", "#e67e22",
	"#f1c40f", "#2ecc71", "#3498db", "#9b59b6",
}

// colorSwatch is a small tappable rectangle selecting a draw color.
type colorSwatch struct {
	widget.BaseWidget
	Token    raster.Token
	OnTapped func(t raster.Token)
}

func newColorSwatch(t raster.Token, tapped func(raster.Token)) *colorSwatch {
	s := &colorSwatch{Token: t, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Token.Color())
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Token)
	}
}

// NewToolbar assembles the tool buttons, color palette and brush size
// selector for one editing session.
func NewToolbar(session *editor.Session) fyne.CanvasObject {
	colorLabel := widget.NewLabel(string(session.Color()))

	// The picker changes the current color without touching the grid;
	// mirror it in the toolbar so the user sees what they grabbed.
	session.OnColorPicked = func(t raster.Token) {
		colorLabel.SetText(string(t))
	}

	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			session.SetTool(editor.ToolPaint)
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			session.SetTool(editor.ToolEraser)
		}),
		widget.NewToolbarAction(theme.ColorChromaticIcon(), func() {
			session.SetTool(editor.ToolPicker)
		}),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() {
			session.SetTool(editor.ToolFill)
		}),
	)

	onColorTapped := func(t raster.Token) {
		session.SetColor(t)
		colorLabel.SetText(string(t))
	}
	swatches := container.NewHBox()
	for _, t := range palette {
		swatches.Add(newColorSwatch(t, onColorTapped))
	}

	brushOptions := make([]string, 0, len(editor.BrushSizes))
	for _, n := range editor.BrushSizes {
		side := 2*n - 1
		brushOptions = append(brushOptions, fmt.Sprintf("%dx%d", side, side))
	}
	brush := widget.NewSelect(brushOptions, func(string) {})
	brush.OnChanged = func(string) {
		if brush.SelectedIndex() >= 0 {
			session.SetBrushSize(editor.BrushSizes[brush.SelectedIndex()])
		}
	}
	brush.SetSelectedIndex(0)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		swatches,
		colorLabel,
		widget.NewSeparator(),
		widget.NewLabel("Brush:"),
		brush,
		layout.NewSpacer(),
	)
}
