// Package config handles application configuration via TOML files.
// Configuration is stored at ~/.config/media-sort/config.toml and covers
// the library folders, the extension sets that drive sorting and cleanup,
// and runtime options. A config.ini left behind by earlier releases is
// imported automatically.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrNoConfig is returned by Load when no configuration existed and a
// default file was written for the user to edit.
var ErrNoConfig = errors.New("no config file found")

// Config holds application configuration
type Config struct {
	Folders    FoldersConfig    `toml:"folders"`
	Extensions ExtensionsConfig `toml:"extensions"`
	Options    OptionsConfig    `toml:"options"`
}

// FoldersConfig holds the directories the sorter works across
type FoldersConfig struct {
	// Incoming is scanned for finished downloads to sort.
	Incoming string `toml:"incoming"`

	// Movies is the flat movie library root.
	// Example: /media/plex/Movies
	Movies string `toml:"movies"`

	// TV is the TV library root, laid out as show/season/episode.
	// Example: /media/plex/TV Shows
	TV string `toml:"tv"`

	// Logs is where the rotating log file lives.
	Logs string `toml:"logs"`
}

// ExtensionsConfig holds the extension sets, lowercase without periods.
// Video extensions select the files that get sorted; the union of all
// four sets decides which leftover directories survive cleanup.
type ExtensionsConfig struct {
	Video    []string `toml:"video"`
	Audio    []string `toml:"audio"`
	Document []string `toml:"document"`
	Other    []string `toml:"other"`
}

// OptionsConfig holds runtime options
type OptionsConfig struct {
	// LogLevel sets the file log verbosity: debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// WatchDebounce is how long watch mode waits after the last
	// filesystem event before running a sweep, e.g. "2s".
	WatchDebounce string `toml:"watch_debounce"`
}

// Default returns the default configuration
func Default() Config {
	home, _ := os.UserHomeDir()

	return Config{
		Folders: FoldersConfig{
			Incoming: filepath.Join(home, "Downloads", "torrents"),
			Movies:   "", // Must be configured by user
			TV:       "", // Must be configured by user
			Logs:     filepath.Join(home, ".local", "state", "media-sort"),
		},
		Extensions: ExtensionsConfig{
			Video:    []string{"mkv", "avi", "mp4", "m4v", "mpg", "mpeg", "wmv", "flv", "webm", "mov", "ts"},
			Audio:    []string{"mp3", "flac", "aac", "ogg", "wav", "m4a"},
			Document: []string{"pdf", "epub", "mobi", "nfo"},
			Other:    []string{"srt", "sub", "idx", "jpg", "jpeg", "png"},
		},
		Options: OptionsConfig{
			LogLevel:      "info",
			WatchDebounce: "2s",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "media-sort", "config.toml")
}

// Load reads config from disk. An empty path means the default location.
// When no TOML file exists it first looks for a legacy config.ini to
// import; failing that it writes the defaults to path and returns
// ErrNoConfig so the caller can tell the user to edit the new file.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}

	for _, legacy := range legacyPaths(path) {
		imported, found, err := importLegacyINI(legacy)
		if err != nil {
			return cfg, fmt.Errorf("import %s: %w", legacy, err)
		}
		if !found {
			continue
		}
		if err := Save(imported, path); err != nil {
			return imported, err
		}
		return imported, nil
	}

	if err := Save(cfg, path); err != nil {
		return cfg, err
	}
	return cfg, ErrNoConfig
}

// Save writes config to disk
func Save(cfg Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate reports the first problem that would make sorting unsafe.
func (c Config) Validate() error {
	roots := []struct {
		key string
		dir string
	}{
		{"folders.incoming", c.Folders.Incoming},
		{"folders.movies", c.Folders.Movies},
		{"folders.tv", c.Folders.TV},
	}
	for _, r := range roots {
		if strings.TrimSpace(r.dir) == "" {
			return fmt.Errorf("%s is not set", r.key)
		}
	}

	// The incoming root gets swept and the libraries written into, so
	// the three must be distinct directories.
	for i, a := range roots {
		for _, b := range roots[i+1:] {
			if filepath.Clean(a.dir) == filepath.Clean(b.dir) {
				return fmt.Errorf("%s and %s are the same directory", a.key, b.key)
			}
		}
	}

	if len(c.Extensions.VideoSet()) == 0 {
		return errors.New("extensions.video is empty, nothing would be sorted")
	}
	return nil
}

// EnsureLibraryDirs creates the movie and TV library roots if they don't exist
func EnsureLibraryDirs(cfg Config) error {
	if err := os.MkdirAll(cfg.Folders.Movies, 0755); err != nil {
		return err
	}
	return os.MkdirAll(cfg.Folders.TV, 0755)
}

// VideoSet returns the video extensions as a normalized lookup set.
func (e ExtensionsConfig) VideoSet() map[string]bool {
	return extensionSet(e.Video)
}

// RecognizedSet returns the union of all extension sets; directories
// holding any of these survive cleanup.
func (e ExtensionsConfig) RecognizedSet() map[string]bool {
	set := extensionSet(e.Video)
	for ext := range extensionSet(e.Audio) {
		set[ext] = true
	}
	for ext := range extensionSet(e.Document) {
		set[ext] = true
	}
	for ext := range extensionSet(e.Other) {
		set[ext] = true
	}
	return set
}

func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			continue
		}
		set[ext] = true
	}
	return set
}

// DebounceInterval parses the watch debounce, falling back to two
// seconds when unset or unparseable.
func (o OptionsConfig) DebounceInterval() time.Duration {
	d, err := time.ParseDuration(o.WatchDebounce)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}
