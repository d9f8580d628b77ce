package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// legacyPaths lists where earlier releases kept their config.ini: next to
// the TOML file, then the working directory.
func legacyPaths(tomlPath string) []string {
	return []string{
		filepath.Join(filepath.Dir(tomlPath), "config.ini"),
		"config.ini",
	}
}

// importLegacyINI maps a config.ini from earlier releases onto Config.
// found is false when no file exists at path; any other stat failure is
// an error so an unreadable legacy file is never silently skipped. Keys
// the INI does not set keep their defaults, so partial files import
// cleanly.
func importLegacyINI(path string) (cfg Config, found bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, false, nil
		}
		return Config{}, false, err
	}

	file, err := ini.Load(path)
	if err != nil {
		return Config{}, false, err
	}

	cfg = Default()

	folders := file.Section("folders")
	cfg.Folders.Incoming = folders.Key("incoming_dir").MustString(cfg.Folders.Incoming)
	cfg.Folders.Movies = folders.Key("movie_dir").MustString(cfg.Folders.Movies)
	cfg.Folders.TV = folders.Key("tv_dir").MustString(cfg.Folders.TV)
	cfg.Folders.Logs = folders.Key("log_dir").MustString(cfg.Folders.Logs)

	exts := file.Section("file_extensions")
	if v := exts.Key("video").Strings(","); len(v) > 0 {
		cfg.Extensions.Video = v
	}
	if v := exts.Key("audio").Strings(","); len(v) > 0 {
		cfg.Extensions.Audio = v
	}
	if v := exts.Key("doc").Strings(","); len(v) > 0 {
		cfg.Extensions.Document = v
	}
	if v := exts.Key("other").Strings(","); len(v) > 0 {
		cfg.Extensions.Other = v
	}

	cfg.Options.LogLevel = file.Section("options").Key("log_level").MustString(cfg.Options.LogLevel)

	return cfg, true, nil
}
