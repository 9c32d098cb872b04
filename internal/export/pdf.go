package export

import (
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"artparty/internal/raster"
)

const (
	pdfMargin = 20.0 // mm
	pdfCell   = 4.0  // mm per grid cell
)

// EncodePDF renders the tile onto an A4 page, one filled rectangle per
// painted cell plus an outer frame. Transparent cells are left as paper.
func EncodePDF(w io.Writer, g *raster.Grid) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	if g != nil {
		for y := 0; y < raster.Size; y++ {
			for x := 0; x < raster.Size; x++ {
				t := g.Get(x, y)
				if !t.IsColor() {
					continue
				}
				c := t.Color()
				p.SetFillColor(int(c.R), int(c.G), int(c.B))
				p.Rect(pdfMargin+float64(x)*pdfCell, pdfMargin+float64(y)*pdfCell, pdfCell, pdfCell, "F")
			}
		}
	}

	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.3)
	p.Rect(pdfMargin, pdfMargin, raster.Size*pdfCell, raster.Size*pdfCell, "D")

	return p.Output(w)
}

// WritePDF writes the tile as a PDF file.
func WritePDF(path string, g *raster.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodePDF(f, g)
}
