package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artparty/internal/raster"
)

func paint(g *raster.Grid, x, y int, tok raster.Token) *raster.Grid {
	g.Set(x, y, tok)
	return g
}

func TestFreshHistoryUndoIsNoOp(t *testing.T) {
	m := NewManager(raster.NewGrid(), 10)
	assert.Equal(t, 1, m.Len())
	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())

	g, ok := m.Undo()
	assert.False(t, ok)
	assert.Nil(t, g)
}

func TestUndoRestoresPreCommitState(t *testing.T) {
	live := raster.NewGrid()
	m := NewManager(live, 10)

	paint(live, 0, 0, "#ff0000")
	m.Commit(live)

	snap, ok := m.Undo()
	require.True(t, ok)
	assert.True(t, snap.Equal(raster.NewGrid()), "undo must restore the pre-commit grid")
	assert.NotSame(t, live, snap)
}

func TestRedoAfterUndo(t *testing.T) {
	live := raster.NewGrid()
	m := NewManager(live, 10)
	paint(live, 1, 1, "#00ff00")
	m.Commit(live)

	_, ok := m.Undo()
	require.True(t, ok)

	snap, ok := m.Redo()
	require.True(t, ok)
	assert.Equal(t, raster.Token("#00ff00"), snap.Get(1, 1))

	_, ok = m.Redo()
	assert.False(t, ok, "redo at the newest entry is a no-op")
}

func TestCommitInvalidatesRedo(t *testing.T) {
	live := raster.NewGrid()
	m := NewManager(live, 10)

	paint(live, 0, 0, "#ff0000")
	m.Commit(live)
	paint(live, 1, 0, "#ff0000")
	m.Commit(live)

	_, ok := m.Undo()
	require.True(t, ok)

	paint(live, 2, 0, "#0000ff")
	m.Commit(live)

	assert.False(t, m.CanRedo(), "a commit after undo discards the redo branch")
	assert.Equal(t, 3, m.Len())
}

func TestSnapshotsAreImmutable(t *testing.T) {
	live := raster.NewGrid()
	m := NewManager(live, 10)

	paint(live, 5, 5, "#ff0000")
	m.Commit(live)

	// Keep editing the live grid after the commit.
	paint(live, 5, 5, "#0000ff")

	_, ok := m.Undo()
	require.True(t, ok)
	snap, ok := m.Redo()
	require.True(t, ok)
	assert.Equal(t, raster.Token("#ff0000"), snap.Get(5, 5),
		"later mutation of the live grid must not alter a stored snapshot")
}

func TestBoundEvictsOldestEntry(t *testing.T) {
	const limit = 3
	live := raster.NewGrid()
	m := NewManager(live, limit)

	// limit commits push the history one past its bound.
	for i := 0; i < limit; i++ {
		paint(live, i, 0, "#111111")
		m.Commit(live)
	}
	assert.Equal(t, limit, m.Len())

	// Walk all the way back: the empty initial grid must be gone.
	var oldest *raster.Grid
	for {
		g, ok := m.Undo()
		if !ok {
			break
		}
		oldest = g
	}
	require.NotNil(t, oldest)
	assert.Equal(t, raster.Token("#111111"), oldest.Get(0, 0),
		"the originally-first entry is evicted and unreachable")
}

func TestResetReseedsHistory(t *testing.T) {
	live := raster.NewGrid()
	m := NewManager(live, 10)
	paint(live, 0, 0, "#ff0000")
	m.Commit(live)

	loaded := raster.NewGrid()
	loaded.Set(9, 9, "#00ff00")
	m.Reset(loaded)

	assert.Equal(t, 1, m.Len())
	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
}
