package internal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen       string `yaml:"listen"`
	Database     string `yaml:"database"`
	Verbose      bool   `yaml:"verbose"`
	Color        bool   `yaml:"color"`
	HistoryLimit int    `yaml:"history_limit"`
}

const (
	DefaultListen       = ":1357"
	DefaultDatabaseFile = ".mipsdecode.db"
	MemoryDatabase      = "file::memory:?cache=shared"
	DefaultHistoryLimit = 20
)

// DefaultDatabase is the history DSN under the user's home directory. The
// in-memory database is used when there is no home.
func DefaultDatabase() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return MemoryDatabase
	}
	return "file:" + filepath.Join(home, DefaultDatabaseFile)
}

func DefaultConfig() Config {
	return Config{
		Listen:       DefaultListen,
		Database:     DefaultDatabase(),
		Color:        true,
		HistoryLimit: DefaultHistoryLimit,
	}
}

// LoadConfig reads a yaml config over the defaults. A missing file leaves the
// defaults untouched.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}

	file, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(&cfg)
	if err != nil {
		return cfg, err
	}

	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	return cfg, nil
}
