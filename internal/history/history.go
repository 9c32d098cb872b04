// Package history provides bounded undo/redo over immutable grid snapshots.
package history

import "artparty/internal/raster"

// DefaultLimit is the number of snapshots kept when no explicit limit is set.
const DefaultLimit = 50

// Manager keeps an ordered list of grid snapshots plus a cursor into it.
// Snapshots are deep copies taken at commit time, so later mutation of the
// live grid never alters a stored entry.
type Manager struct {
	entries []*raster.Grid
	index   int
	limit   int
}

// NewManager creates a history seeded with a snapshot of initial, which
// becomes the single entry at index 0. A limit below 1 falls back to
// DefaultLimit.
func NewManager(initial *raster.Grid, limit int) *Manager {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Manager{
		entries: []*raster.Grid{initial.Clone()},
		index:   0,
		limit:   limit,
	}
}

// Commit snapshots g and makes it the newest entry. Entries beyond the
// cursor are discarded first, so a commit after undo invalidates redo.
// When the limit is exceeded the oldest entry is evicted and the cursor
// shifts down so the new entry stays addressable.
func (m *Manager) Commit(g *raster.Grid) {
	m.entries = append(m.entries[:m.index+1], g.Clone())
	m.index++
	if len(m.entries) > m.limit {
		m.entries = m.entries[1:]
		m.index--
	}
}

// Undo moves the cursor one entry back and returns a copy of the snapshot
// now pointed to. At the oldest entry it is a no-op and returns (nil, false).
func (m *Manager) Undo() (*raster.Grid, bool) {
	if m.index <= 0 {
		return nil, false
	}
	m.index--
	return m.entries[m.index].Clone(), true
}

// Redo moves the cursor one entry forward and returns a copy of the
// snapshot now pointed to. At the newest entry it is a no-op and returns
// (nil, false).
func (m *Manager) Redo() (*raster.Grid, bool) {
	if m.index >= len(m.entries)-1 {
		return nil, false
	}
	m.index++
	return m.entries[m.index].Clone(), true
}

// CanUndo reports whether an older snapshot exists.
func (m *Manager) CanUndo() bool { return m.index > 0 }

// CanRedo reports whether a newer snapshot exists.
func (m *Manager) CanRedo() bool { return m.index < len(m.entries)-1 }

// Len returns the number of stored snapshots.
func (m *Manager) Len() int { return len(m.entries) }

// Reset discards all entries and reseeds the history with initial, as when
// a different tile is loaded into the editor.
func (m *Manager) Reset(initial *raster.Grid) {
	m.entries = []*raster.Grid{initial.Clone()}
	m.index = 0
}
