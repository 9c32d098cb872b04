package raster

import "image/color"

// Size is the fixed edge length of a tile. Every grid is exactly
// Size x Size cells; there is no partial or resizable tile.
const Size = 32

// Token is the value stored per cell: either the transparent sentinel
// or an opaque lower-case "#rrggbb" color.
type Token string

// Transparent marks a cell that has never been painted or was erased.
const Transparent Token = "transparent"

// Valid reports whether t is a well-formed token.
func (t Token) Valid() bool {
	if t == Transparent {
		return true
	}
	if len(t) != 7 || t[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		c := t[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// IsColor reports whether t is an opaque color (valid and not the sentinel).
func (t Token) IsColor() bool {
	return t != Transparent && t.Valid()
}

// Color converts the token to an NRGBA value. The transparent sentinel
// and malformed tokens map to fully transparent black.
func (t Token) Color() color.NRGBA {
	if !t.IsColor() {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: hexByte(t[1], t[2]),
		G: hexByte(t[3], t[4]),
		B: hexByte(t[5], t[6]),
		A: 255,
	}
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) uint8 {
	if c >= 'a' {
		return c - 'a' + 10
	}
	return c - '0'
}

// Grid is one tile's pixel raster, indexed row-major by (y, x).
// The zero Grid is not usable; construct with NewGrid or Deserialize.
type Grid struct {
	cells [Size][Size]Token
}

// NewGrid returns a grid with every cell transparent.
func NewGrid() *Grid {
	g := &Grid{}
	g.Clear()
	return g
}

// Get returns the token at (x, y). Out-of-range coordinates yield the
// transparent sentinel so pointer arithmetic at the edges never faults.
func (g *Grid) Get(x, y int) Token {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return Transparent
	}
	return g.cells[y][x]
}

// Set writes the token at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, t Token) {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return
	}
	g.cells[y][x] = t
}

// Clear resets every cell to transparent.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Transparent
		}
	}
}

// Clone returns a deep copy sharing no mutable state with g.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Equal reports whether both grids hold the same tokens in every cell.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.cells == o.cells
}
