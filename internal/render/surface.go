// Package render projects a tile grid onto a pixel-exact RGBA surface.
package render

import (
	"image"
	"image/color"

	"artparty/internal/raster"
)

var (
	// background shows through wherever a cell is transparent.
	background = color.NRGBA{R: 245, G: 246, B: 248, A: 255}
	// gridLine is the fixed overlay color drawn at cell boundaries.
	gridLine = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
)

// Surface is a drawable buffer sized to a whole number of cell blocks.
// Each cell maps to a blockSize x blockSize square, nearest-neighbor with
// no smoothing, and grid lines are drawn over every cell boundary.
type Surface struct {
	img   *image.RGBA
	block int
	size  int
}

// NewSurface builds a surface for the requested pixel size. The block
// size is surfaceSize / raster.Size (minimum 1); the actual surface is
// block*raster.Size pixels so every block stays exactly square.
func NewSurface(surfaceSize int) *Surface {
	block := surfaceSize / raster.Size
	if block < 1 {
		block = 1
	}
	size := block * raster.Size
	s := &Surface{
		img:   image.NewRGBA(image.Rect(0, 0, size, size)),
		block: block,
		size:  size,
	}
	s.Render(nil)
	return s
}

// Image exposes the backing buffer for display. The buffer is reused
// across renders; callers must not hold on to its pixels.
func (s *Surface) Image() *image.RGBA { return s.img }

// BlockSize returns the pixel edge length of one cell block.
func (s *Surface) BlockSize() int { return s.block }

// SizePx returns the surface edge length in pixels.
func (s *Surface) SizePx() int { return s.size }

// CellAt maps a surface pixel position to grid coordinates. The result
// may be out of the grid's range; cell access handles that silently.
func (s *Surface) CellAt(px, py int) (int, int) {
	if px < 0 {
		px -= s.block - 1
	}
	if py < 0 {
		py -= s.block - 1
	}
	return px / s.block, py / s.block
}

// Render redraws every cell and then the grid overlay. A nil grid renders
// the empty placeholder (background plus grid lines) instead of failing.
func (s *Surface) Render(g *raster.Grid) {
	for y := 0; y < raster.Size; y++ {
		for x := 0; x < raster.Size; x++ {
			s.fillBlock(x, y, s.cellColor(g, x, y))
		}
	}
	s.drawGridLines()
}

// RenderCell redraws a single cell block and its boundary lines. The
// result is pixel-identical to the same region of a full Render.
func (s *Surface) RenderCell(g *raster.Grid, x, y int) {
	if x < 0 || x >= raster.Size || y < 0 || y >= raster.Size {
		return
	}
	s.fillBlock(x, y, s.cellColor(g, x, y))
	x0, y0 := x*s.block, y*s.block
	s.vline(x0, y0, y0+s.block)
	s.hline(y0, x0, x0+s.block)
	if x == raster.Size-1 {
		s.vline(s.size-1, y0, y0+s.block)
	}
	if y == raster.Size-1 {
		s.hline(s.size-1, x0, x0+s.block)
	}
}

func (s *Surface) cellColor(g *raster.Grid, x, y int) color.NRGBA {
	if g == nil {
		return background
	}
	t := g.Get(x, y)
	if !t.IsColor() {
		return background
	}
	return t.Color()
}

func (s *Surface) fillBlock(x, y int, c color.NRGBA) {
	x0, y0 := x*s.block, y*s.block
	for py := y0; py < y0+s.block; py++ {
		for px := x0; px < x0+s.block; px++ {
			s.img.SetRGBA(px, py, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
}

// drawGridLines overlays a one-pixel line at every cell boundary. The
// closing right and bottom boundary sit on the last pixel row/column.
func (s *Surface) drawGridLines() {
	for k := 0; k <= raster.Size; k++ {
		pos := k * s.block
		if pos >= s.size {
			pos = s.size - 1
		}
		s.vline(pos, 0, s.size)
		s.hline(pos, 0, s.size)
	}
}

func (s *Surface) vline(x, y0, y1 int) {
	for y := y0; y < y1; y++ {
		s.img.SetRGBA(x, y, color.RGBA{R: gridLine.R, G: gridLine.G, B: gridLine.B, A: gridLine.A})
	}
}

func (s *Surface) hline(y, x0, x1 int) {
	for x := x0; x < x1; x++ {
		s.img.SetRGBA(x, y, color.RGBA{R: gridLine.R, G: gridLine.G, B: gridLine.B, A: gridLine.A})
	}
}
