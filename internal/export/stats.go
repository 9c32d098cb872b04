package export

import "artparty/internal/raster"

// Stats summarizes how much of a tile has been painted.
type Stats struct {
	Filled      int     // non-transparent cells
	Colors      int     // distinct colors in use
	FillPercent float64 // Filled / (Size*Size) * 100
}

// ComputeStats counts filled cells and distinct colors. A nil grid
// yields zero stats.
func ComputeStats(g *raster.Grid) Stats {
	var st Stats
	if g == nil {
		return st
	}
	seen := make(map[raster.Token]struct{})
	for y := 0; y < raster.Size; y++ {
		for x := 0; x < raster.Size; x++ {
			t := g.Get(x, y)
			if !t.IsColor() {
				continue
			}
			st.Filled++
			seen[t] = struct{}{}
		}
	}
	st.Colors = len(seen)
	st.FillPercent = float64(st.Filled) / (raster.Size * raster.Size) * 100
	return st
}
