// Package export rasterizes tiles for thumbnails and file export and
// computes coverage statistics. Nothing here touches a live editing
// session; callers pass a grid (or nil, which exports as fully empty).
package export

import (
	"image"
	"image/png"
	"io"
	"os"

	"artparty/internal/raster"
)

// Raster renders the grid into a (Size*scale) square image where each
// cell becomes a scale x scale block. Transparent cells stay alpha 0;
// there is no background fill and no smoothing. A scale below 1 is
// clamped to 1.
func Raster(g *raster.Grid, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	side := raster.Size * scale
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	if g == nil {
		return img
	}
	for y := 0; y < raster.Size; y++ {
		for x := 0; x < raster.Size; x++ {
			t := g.Get(x, y)
			if !t.IsColor() {
				continue
			}
			c := t.Color()
			for py := y * scale; py < (y+1)*scale; py++ {
				for px := x * scale; px < (x+1)*scale; px++ {
					img.SetNRGBA(px, py, c)
				}
			}
		}
	}
	return img
}

// Thumbnail renders the grid at roughly the requested pixel size. Output
// is pixel-exact when size is a multiple of raster.Size; otherwise the
// scale is rounded to the nearest integer and the result is slightly
// smaller or larger than asked.
func Thumbnail(g *raster.Grid, size int) *image.NRGBA {
	scale := (size + raster.Size/2) / raster.Size
	return Raster(g, scale)
}

// EncodePNG writes the grid as PNG at the given scale.
func EncodePNG(w io.Writer, g *raster.Grid, scale int) error {
	return png.Encode(w, Raster(g, scale))
}

// SavePNG writes the grid as a PNG file at the given scale.
func SavePNG(path string, g *raster.Grid, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodePNG(f, g, scale)
}
