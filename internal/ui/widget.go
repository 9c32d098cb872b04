package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"artparty/internal/editor"
	"artparty/internal/raster"
	"artparty/internal/render"
)

// TileWidget is the interactive editing surface for one tile. It forwards
// pointer events to the session and repaints the render surface through
// the session's callbacks, so all drawing logic stays out of the UI.
type TileWidget struct {
	widget.BaseWidget
	session *editor.Session
	surface *render.Surface
	pixels  *canvas.Image
}

var _ fyne.Widget = (*TileWidget)(nil)
var _ fyne.Draggable = (*TileWidget)(nil)
var _ desktop.Mouseable = (*TileWidget)(nil)

func NewTileWidget(session *editor.Session, surfaceSize int) *TileWidget {
	w := &TileWidget{
		session: session,
		surface: render.NewSurface(surfaceSize),
	}
	w.pixels = canvas.NewImageFromImage(w.surface.Image())
	// Nearest-neighbor display; smoothing would wreck the pixel art.
	w.pixels.ScaleMode = canvas.ImageScalePixels
	w.pixels.FillMode = canvas.ImageFillStretch
	w.pixels.SetMinSize(fyne.NewSize(float32(w.surface.SizePx()), float32(w.surface.SizePx())))

	session.OnCellChanged = func(x, y int) {
		w.surface.RenderCell(session.Grid(), x, y)
		canvas.Refresh(w.pixels)
	}
	session.OnGridChanged = func() {
		w.surface.Render(session.Grid())
		canvas.Refresh(w.pixels)
	}

	w.surface.Render(session.Grid())
	w.ExtendBaseWidget(w)
	return w
}

func (w *TileWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.pixels)
}

// cellAt maps a widget position to grid coordinates. Results may fall
// outside the grid near the edges; the session ignores those.
func (w *TileWidget) cellAt(pos fyne.Position) (int, int) {
	size := w.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return -1, -1
	}
	cx := int(math.Floor(float64(pos.X) / float64(size.Width) * raster.Size))
	cy := int(math.Floor(float64(pos.Y) / float64(size.Height) * raster.Size))
	return cx, cy
}

func (w *TileWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		x, y := w.cellAt(e.Position)
		w.session.PointerDown(x, y)
	}
}

func (w *TileWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.session.PointerUp()
	}
}

func (w *TileWidget) Dragged(e *fyne.DragEvent) {
	x, y := w.cellAt(e.Position)
	w.session.PointerMove(x, y)
}

func (w *TileWidget) DragEnd() {
	w.session.PointerUp()
}

func (w *TileWidget) MouseIn(*desktop.MouseEvent) {}

// MouseOut ends any in-progress stroke; leaving the surface counts as a
// release, the partial edit is kept and committed.
func (w *TileWidget) MouseOut() {
	w.session.PointerLeave()
}

func (w *TileWidget) MouseMoved(*desktop.MouseEvent) {}
