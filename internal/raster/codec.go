package raster

import (
	"encoding/json"
	"fmt"
)

// ValidationError reports why serialized tile data was rejected.
// The caller's existing grid is never modified on failure.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid tile data: " + e.Reason
}

// Serialize encodes the grid as the canonical wire form: a JSON array of
// Size rows, each an array of Size tokens, row-major. This exact payload
// is what the persistence and sync layers exchange.
func (g *Grid) Serialize() string {
	data, err := json.Marshal(g.cells)
	if err != nil {
		// A [Size][Size]Token array cannot fail to marshal.
		panic(err)
	}
	return string(data)
}

// Deserialize parses and validates serialized tile data. It returns a new
// grid, or a *ValidationError if the payload is not well-formed: wrong row
// or column count, or any cell that is neither the transparent sentinel
// nor a lower-case "#rrggbb" color.
func Deserialize(data string) (*Grid, error) {
	var rows [][]Token
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("not a token array: %v", err)}
	}
	if len(rows) != Size {
		return nil, &ValidationError{Reason: fmt.Sprintf("expected %d rows, got %d", Size, len(rows))}
	}
	g := &Grid{}
	for y, row := range rows {
		if len(row) != Size {
			return nil, &ValidationError{Reason: fmt.Sprintf("row %d: expected %d cells, got %d", y, Size, len(row))}
		}
		for x, tok := range row {
			if !tok.Valid() {
				return nil, &ValidationError{Reason: fmt.Sprintf("cell (%d,%d): bad token %q", x, y, tok)}
			}
			g.cells[y][x] = tok
		}
	}
	return g, nil
}
