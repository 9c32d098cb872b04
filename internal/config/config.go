// Package config loads app settings from the environment, with an
// optional .env file for development.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the app-level knobs. The grid size itself is fixed by the
// wire format and is deliberately not configurable.
type Config struct {
	StorageDir   string // where tile files live
	HistoryLimit int    // max undo snapshots per session
	SurfaceSize  int    // requested editor surface size in pixels
}

// Load reads configuration from the environment. A missing .env file is
// fine; missing variables fall back to defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not read .env file")
	}

	cfg := Config{
		StorageDir:   defaultStorageDir(),
		HistoryLimit: 50,
		SurfaceSize:  512,
	}
	if dir := os.Getenv("ARTPARTY_STORAGE_DIR"); dir != "" {
		cfg.StorageDir = dir
	}
	if n, ok := envInt("ARTPARTY_HISTORY_LIMIT"); ok && n > 0 {
		cfg.HistoryLimit = n
	}
	if n, ok := envInt("ARTPARTY_SURFACE_SIZE"); ok && n > 0 {
		cfg.SurfaceSize = n
	}
	return cfg
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithField("var", key).Warnf("ignoring non-numeric value %q", v)
		return 0, false
	}
	return n, true
}

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tiles"
	}
	return filepath.Join(home, ".artparty", "tiles")
}
