package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artparty/internal/raster"
)

func TestRasterDimensionsAndBlocks(t *testing.T) {
	g := raster.NewGrid()
	g.Set(1, 0, "#ff0000")

	img := Raster(g, 4)
	assert.Equal(t, raster.Size*4, img.Bounds().Dx())
	assert.Equal(t, raster.Size*4, img.Bounds().Dy())

	// Every pixel of the painted cell's 4x4 block carries the color.
	for py := 0; py < 4; py++ {
		for px := 4; px < 8; px++ {
			c := img.NRGBAAt(px, py)
			assert.Equal(t, uint8(0xff), c.R)
			assert.Equal(t, uint8(0xff), c.A)
		}
	}
}

func TestRasterTransparentCellsAreAlphaZero(t *testing.T) {
	g := raster.NewGrid()
	g.Set(0, 0, "#00ff00")

	img := Raster(g, 2)
	assert.Equal(t, uint8(0), img.NRGBAAt(10, 10).A, "unpainted cells export as fully transparent")
	assert.Equal(t, uint8(255), img.NRGBAAt(0, 0).A)
}

func TestRasterClampsScale(t *testing.T) {
	img := Raster(raster.NewGrid(), 0)
	assert.Equal(t, raster.Size, img.Bounds().Dx())
}

func TestRasterNilGrid(t *testing.T) {
	img := Raster(nil, 2)
	require.NotNil(t, img)
	assert.Equal(t, uint8(0), img.NRGBAAt(5, 5).A)
}

func TestThumbnailScaling(t *testing.T) {
	g := raster.NewGrid()

	// Exact multiple of the grid size: pixel-exact output.
	assert.Equal(t, 64, Thumbnail(g, 64).Bounds().Dx())

	// Otherwise the scale rounds to the nearest integer.
	assert.Equal(t, 64, Thumbnail(g, 70).Bounds().Dx())
	assert.Equal(t, 96, Thumbnail(g, 90).Bounds().Dx())

	// Tiny requests never drop below one pixel per cell.
	assert.Equal(t, raster.Size, Thumbnail(g, 10).Bounds().Dx())
}

func TestEncodePNGRoundTrip(t *testing.T) {
	g := raster.NewGrid()
	g.Set(3, 3, "#abcdef")

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, g, 2))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, raster.Size*2, decoded.Bounds().Dx())

	r, _, _, a := decoded.At(6, 6).RGBA()
	assert.Equal(t, uint32(0xab)*0x101, r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.png")
	require.NoError(t, SavePNG(path, raster.NewGrid(), 1))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestComputeStats(t *testing.T) {
	g := raster.NewGrid()
	g.Set(0, 0, "#ff0000")
	g.Set(1, 0, "#ff0000")
	g.Set(2, 0, "#00ff00")

	st := ComputeStats(g)
	assert.Equal(t, 3, st.Filled)
	assert.Equal(t, 2, st.Colors)
	assert.InDelta(t, 100.0*3/1024, st.FillPercent, 1e-9)
}

func TestComputeStatsEmptyAndNil(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(raster.NewGrid()))
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestWritePDF(t *testing.T) {
	g := raster.NewGrid()
	g.Set(0, 0, "#ff0000")
	g.Set(31, 31, "#0000ff")

	path := filepath.Join(t.TempDir(), "tile.pdf")
	require.NoError(t, WritePDF(path, g))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestEncodePDFNilGrid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePDF(&buf, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
