package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	want := Default()
	want.Folders.Incoming = "/data/incoming"
	want.Folders.Movies = "/data/movies"
	want.Folders.TV = "/data/tv"
	want.Options.LogLevel = "debug"

	if err := Save(want, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Folders.Incoming != want.Folders.Incoming {
		t.Errorf("incoming: got %q, want %q", got.Folders.Incoming, want.Folders.Incoming)
	}
	if got.Options.LogLevel != "debug" {
		t.Errorf("log_level: got %q, want %q", got.Options.LogLevel, "debug")
	}
}

func TestLoadBootstrapsDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	_, err := Load(path)
	if !errors.Is(err, ErrNoConfig) {
		t.Fatalf("Load: got err %v, want ErrNoConfig", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}

	// A second load reads the file that was just written.
	if _, err := Load(path); err != nil {
		t.Errorf("Load after bootstrap: %v", err)
	}
}

func TestLoadImportsLegacyINI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	legacy := `[folders]
incoming_dir = /srv/incoming
movie_dir = /srv/movies
tv_dir = /srv/tv
log_dir = /srv/logs

[file_extensions]
video = mkv,avi
doc = pdf

[options]
log_level = debug
`
	if err := os.WriteFile(filepath.Join(dir, "config.ini"), []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Folders.Incoming != "/srv/incoming" {
		t.Errorf("incoming: got %q, want %q", cfg.Folders.Incoming, "/srv/incoming")
	}
	if cfg.Folders.TV != "/srv/tv" {
		t.Errorf("tv: got %q, want %q", cfg.Folders.TV, "/srv/tv")
	}
	if cfg.Options.LogLevel != "debug" {
		t.Errorf("log_level: got %q, want %q", cfg.Options.LogLevel, "debug")
	}
	videos := cfg.Extensions.VideoSet()
	if !videos["mkv"] || !videos["avi"] || len(videos) != 2 {
		t.Errorf("video set: got %v, want mkv and avi only", videos)
	}
	if !cfg.Extensions.RecognizedSet()["pdf"] {
		t.Errorf("recognized set misses pdf: %v", cfg.Extensions.RecognizedSet())
	}

	// The import leaves a TOML file behind for future loads.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("migrated config not written: %v", err)
	}
}

func TestLoadFailsWhenLegacyINIUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	// A self-referential symlink makes os.Stat fail with something other
	// than "does not exist".
	loop := filepath.Join(dir, "config.ini")
	if err := os.Symlink(loop, loop); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load: expected error for unreadable legacy config")
	}
	if errors.Is(err, ErrNoConfig) {
		t.Fatalf("Load: stat failure swallowed, got ErrNoConfig")
	}

	// The failed import must not be papered over with a fresh default.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("default config written despite import failure: stat err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.Folders.Incoming = "/data/incoming"
	valid.Folders.Movies = "/data/movies"
	valid.Folders.TV = "/data/tv"

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"movies unset", func(c *Config) { c.Folders.Movies = "" }, true},
		{"tv blank", func(c *Config) { c.Folders.TV = "   " }, true},
		{"incoming equals tv", func(c *Config) { c.Folders.Incoming = c.Folders.TV }, true},
		{"movies equals tv after cleaning", func(c *Config) { c.Folders.Movies = "/data/tv/" }, true},
		{"no video extensions", func(c *Config) { c.Extensions.Video = nil }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate: got err %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestExtensionSetNormalization(t *testing.T) {
	e := ExtensionsConfig{Video: []string{" .MKV", "avi ", "", "."}}

	got := e.VideoSet()
	if !got["mkv"] || !got["avi"] || len(got) != 2 {
		t.Errorf("video set: got %v, want mkv and avi only", got)
	}
}

func TestDebounceInterval(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"500ms", 500 * time.Millisecond},
		{"1m", time.Minute},
		{"", 2 * time.Second},
		{"soon", 2 * time.Second},
		{"-3s", 2 * time.Second},
	}

	for _, tc := range cases {
		o := OptionsConfig{WatchDebounce: tc.raw}
		if got := o.DebounceInterval(); got != tc.want {
			t.Errorf("DebounceInterval(%q): got %v, want %v", tc.raw, got, tc.want)
		}
	}
}
