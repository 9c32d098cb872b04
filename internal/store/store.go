// Package store is the local persistence client for serialized tiles.
// It only ever handles the canonical wire form; live grids never cross
// this boundary.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"artparty/internal/raster"
)

// ErrNotFound is returned when no tile is stored under the given ID.
var ErrNotFound = errors.New("tile not found")

// Store persists one JSON file per tile under a base directory.
type Store struct {
	dir string
	log *logrus.Entry
}

// New opens (creating if needed) a tile store rooted at dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Store{dir: dir, log: logrus.WithField("store", dir)}, nil
}

func (s *Store) path(tileID string) string {
	return filepath.Join(s.dir, tileID+".json")
}

// Save writes serialized tile data under tileID. The payload is checked
// against the wire format first so a bad caller cannot poison the store.
func (s *Store) Save(tileID, data string) error {
	if tileID == "" {
		return errors.New("empty tile id")
	}
	if _, err := raster.Deserialize(data); err != nil {
		return fmt.Errorf("refusing to save: %w", err)
	}
	if err := os.WriteFile(s.path(tileID), []byte(data), 0o644); err != nil {
		return fmt.Errorf("save tile %s: %w", tileID, err)
	}
	s.log.WithField("tile", tileID).Info("tile saved")
	return nil
}

// Load reads the serialized data stored under tileID. The payload is
// validated before it is handed back, so a corrupt file surfaces here
// rather than inside the editor.
func (s *Store) Load(tileID string) (string, error) {
	raw, err := os.ReadFile(s.path(tileID))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("load tile %s: %w", tileID, err)
	}
	data := string(raw)
	if _, err := raster.Deserialize(data); err != nil {
		return "", fmt.Errorf("stored tile %s is corrupt: %w", tileID, err)
	}
	return data, nil
}

// Delete removes the tile stored under tileID, if any.
func (s *Store) Delete(tileID string) error {
	err := os.Remove(s.path(tileID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete tile %s: %w", tileID, err)
	}
	return nil
}
