// Package editor drives one tile editing session: it interprets pointer
// input as tool applications on a grid and commits strokes to history.
package editor

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"artparty/internal/history"
	"artparty/internal/raster"
)

// Session owns the live grid, tool state and undo history for one tile.
// Sessions are independently instantiable; editing two tiles at once means
// two sessions. A session must only be driven from a single goroutine.
//
// Callbacks let the UI and persistence react without the session knowing
// about either:
//
//	OnCellChanged  - a single cell was written (paint/erase)
//	OnGridChanged  - the whole grid may have changed (fill, undo, load)
//	OnStrokeEnd    - a stroke finished, whether or not it was committed
//	OnColorPicked  - the picker tool changed the current color
type Session struct {
	ID string

	grid    *raster.Grid
	history *history.Manager

	tool  Tool
	color raster.Token
	brush int

	drawing bool
	mutated bool

	OnCellChanged func(x, y int)
	OnGridChanged func()
	OnStrokeEnd   func()
	OnColorPicked func(t raster.Token)

	log *logrus.Entry
}

// NewSession creates a session over an empty grid, with a fresh tile ID
// and a history seeded with the empty grid as its only entry.
func NewSession(historyLimit int) *Session {
	grid := raster.NewGrid()
	id := uuid.NewString()
	return &Session{
		ID:      id,
		grid:    grid,
		history: history.NewManager(grid, historyLimit),
		tool:    ToolPaint,
		color:   raster.Token("#000000"),
		brush:   1,
		log:     logrus.WithField("tile", id),
	}
}

// Grid returns the live grid. It belongs to the session; external
// consumers must go through Serialize instead of holding on to it.
func (s *Session) Grid() *raster.Grid { return s.grid }

// Serialize returns the grid in the canonical wire form.
func (s *Session) Serialize() string { return s.grid.Serialize() }

// Load replaces the grid wholesale with deserialized tile data and reseeds
// the history. On a validation error the current grid is left untouched.
func (s *Session) Load(data string) error {
	g, err := raster.Deserialize(data)
	if err != nil {
		return err
	}
	s.grid = g
	s.history.Reset(g)
	s.drawing = false
	s.mutated = false
	s.log.Info("tile loaded")
	s.notifyGrid()
	return nil
}

// Clear wipes the grid and commits the empty state, so a clear is a
// single undoable step like any stroke.
func (s *Session) Clear() {
	s.grid.Clear()
	s.history.Commit(s.grid)
	s.log.Info("tile cleared")
	s.notifyGrid()
}

// SetTool selects the active tool.
func (s *Session) SetTool(t Tool) { s.tool = t }

// Tool returns the active tool.
func (s *Session) Tool() Tool { return s.tool }

// SetColor sets the current draw color. Non-color tokens (the transparent
// sentinel, malformed strings) are rejected; erasing is the Eraser's job.
func (s *Session) SetColor(t raster.Token) {
	if t.IsColor() {
		s.color = t
	}
}

// Color returns the current draw color.
func (s *Session) Color() raster.Token { return s.color }

// SetBrushSize selects the brush size; values outside BrushSizes are ignored.
func (s *Session) SetBrushSize(n int) {
	for _, allowed := range BrushSizes {
		if n == allowed {
			s.brush = n
			return
		}
	}
}

// BrushSize returns the current brush size.
func (s *Session) BrushSize() int { return s.brush }

// CanUndo reports whether Undo would change the grid.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would change the grid.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Undo restores the previous snapshot. At the oldest entry it is a no-op.
func (s *Session) Undo() bool {
	g, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.grid = g
	s.notifyGrid()
	return true
}

// Redo restores the next snapshot. At the newest entry it is a no-op.
func (s *Session) Redo() bool {
	g, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.grid = g
	s.notifyGrid()
	return true
}

// PointerDown starts a stroke and applies the active tool at the seed cell.
func (s *Session) PointerDown(x, y int) {
	if s.drawing {
		return
	}
	s.drawing = true
	s.mutated = false
	s.dispatch(x, y)
}

// PointerMove applies the active tool at the cell under the pointer while
// a stroke is in progress. Samples are applied as delivered; a fast drag
// can skip cells, no interpolation is attempted.
func (s *Session) PointerMove(x, y int) {
	if !s.drawing {
		return
	}
	s.dispatch(x, y)
}

// PointerUp ends the stroke. If any cell changed, the grid is committed
// to history as one unit; picker strokes and no-op fills commit nothing.
func (s *Session) PointerUp() {
	s.endStroke()
}

// PointerLeave ends the stroke exactly like a release: the partial edit
// is committed, not rolled back.
func (s *Session) PointerLeave() {
	s.endStroke()
}

func (s *Session) endStroke() {
	if !s.drawing {
		return
	}
	s.drawing = false
	if s.mutated {
		s.history.Commit(s.grid)
		s.log.WithField("tool", s.tool.String()).Debug("stroke committed")
	}
	s.mutated = false
	if s.OnStrokeEnd != nil {
		s.OnStrokeEnd()
	}
}

// dispatch applies the active tool at one cell.
func (s *Session) dispatch(x, y int) {
	switch s.tool {
	case ToolPaint:
		s.applyBrush(x, y, s.color)
	case ToolEraser:
		s.applyBrush(x, y, raster.Transparent)
	case ToolPicker:
		if t := s.grid.Get(x, y); t.IsColor() {
			s.color = t
			if s.OnColorPicked != nil {
				s.OnColorPicked(t)
			}
		}
	case ToolFill:
		s.floodFill(x, y)
	}
}

// applyBrush writes tok to the (2n-1)x(2n-1) block centered on (x, y)
// for brush size n. Cells off the grid edge are skipped.
func (s *Session) applyBrush(x, y int, tok raster.Token) {
	r := s.brush - 1
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			s.setCell(x+dx, y+dy, tok)
		}
	}
}

func (s *Session) setCell(x, y int, tok raster.Token) {
	if x < 0 || x >= raster.Size || y < 0 || y >= raster.Size {
		return
	}
	if s.grid.Get(x, y) == tok {
		return
	}
	s.grid.Set(x, y, tok)
	s.mutated = true
	if s.OnCellChanged != nil {
		s.OnCellChanged(x, y)
	}
}

type cell struct{ x, y int }

// floodFill replaces the 4-connected component of the seed's token with
// the current color. Iterative with an explicit stack so worst-case
// whole-grid fills never risk call-stack depth.
func (s *Session) floodFill(x, y int) {
	target := s.grid.Get(x, y)
	if target == s.color {
		// Filling a region with its own color is a no-op; bailing out
		// also keeps the loop from revisiting freshly painted cells.
		return
	}
	var visited [raster.Size][raster.Size]bool
	stack := []cell{{x, y}}
	changed := false
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.x < 0 || c.x >= raster.Size || c.y < 0 || c.y >= raster.Size {
			continue
		}
		if visited[c.y][c.x] || s.grid.Get(c.x, c.y) != target {
			continue
		}
		visited[c.y][c.x] = true
		s.grid.Set(c.x, c.y, s.color)
		changed = true
		stack = append(stack,
			cell{c.x + 1, c.y},
			cell{c.x - 1, c.y},
			cell{c.x, c.y + 1},
			cell{c.x, c.y - 1},
		)
	}
	if changed {
		s.mutated = true
		s.notifyGrid()
	}
}

func (s *Session) notifyGrid() {
	if s.OnGridChanged != nil {
		s.OnGridChanged()
	}
}
