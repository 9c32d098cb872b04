package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"artparty/internal/config"
	"artparty/internal/editor"
	"artparty/internal/export"
	"artparty/internal/store"
)

const exportScale = 8 // pixels per cell in exported PNGs

// RunApp opens the editor window for one tile session and blocks until
// the window is closed.
func RunApp(cfg config.Config, session *editor.Session, st *store.Store) {
	a := app.New()
	win := a.NewWindow("ArtParty Tile Editor")

	tile := NewTileWidget(session, cfg.SurfaceSize)
	status := widget.NewLabel("Ready")

	updateStats := func() {
		s := export.ComputeStats(session.Grid())
		status.SetText(fmt.Sprintf("%d cells filled (%.1f%%), %d colors", s.Filled, s.FillPercent, s.Colors))
	}
	session.OnStrokeEnd = updateStats

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.NavigateBackIcon(), func() {
			session.Undo()
			updateStats()
		}),
		widget.NewToolbarAction(theme.NavigateNextIcon(), func() {
			session.Redo()
			updateStats()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			session.Clear()
			updateStats()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if err := st.Save(session.ID, session.Serialize()); err != nil {
				dialog.ShowError(err, win)
				return
			}
			status.SetText("Saved tile " + session.ID)
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			data, err := st.Load(session.ID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					status.SetText("No saved copy of this tile yet")
					return
				}
				dialog.ShowError(err, win)
				return
			}
			if err := session.Load(data); err != nil {
				dialog.ShowError(err, win)
				return
			}
			updateStats()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), func() {
			saveThrough(win, session, "tile.png", func(w fyne.URIWriteCloser) error {
				return export.EncodePNG(w, session.Grid(), exportScale)
			})
		}),
		widget.NewToolbarAction(theme.DocumentIcon(), func() {
			saveThrough(win, session, "tile.pdf", func(w fyne.URIWriteCloser) error {
				return export.EncodePDF(w, session.Grid())
			})
		}),
	)

	top := container.NewVBox(NewToolbar(session), actions)
	content := container.NewBorder(top, status, nil, nil, container.NewCenter(tile))

	win.SetContent(content)
	win.Resize(fyne.NewSize(760, 700))
	win.ShowAndRun()
}

// saveThrough runs a file-save dialog and pipes the chosen writer into
// the export function, logging rather than crashing on failure.
func saveThrough(win fyne.Window, session *editor.Session, name string, write func(fyne.URIWriteCloser) error) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return // cancelled
		}
		defer func() {
			if cerr := w.Close(); cerr != nil {
				logrus.WithError(cerr).Warn("closing export file")
			}
		}()
		if err := write(w); err != nil {
			logrus.WithError(err).WithField("tile", session.ID).Error("export failed")
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFileName(name)
	d.Show()
}
