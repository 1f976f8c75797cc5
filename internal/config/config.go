package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Defaults.
const (
	DefaultTextWidth       = 80
	DefaultAutoSaveSeconds = 30
	DefaultPageRows        = 20
	DefaultStatusTimeout   = 3
)

// Config holds the tunable settings. Zero is meaningful for
// AutoSaveSeconds (disabled); every other field falls back to its default
// when missing from the file.
type Config struct {
	// TextWidth is the wrap width for the writing area.
	TextWidth int

	// AutoSaveSeconds is the auto-save interval. 0 disables auto-save.
	AutoSaveSeconds int

	// PageRows is the PageUp/PageDown line delta when the frontend does
	// not supply a viewport height.
	PageRows int

	// ShowStatus controls whether the status line starts visible.
	ShowStatus bool

	// StatusTimeout is how many seconds a toggled-on status line stays
	// before hiding again.
	StatusTimeout int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TextWidth:       DefaultTextWidth,
		AutoSaveSeconds: DefaultAutoSaveSeconds,
		PageRows:        DefaultPageRows,
		ShowStatus:      false,
		StatusTimeout:   DefaultStatusTimeout,
	}
}

// AutoSaveInterval returns the auto-save interval as a duration, 0 when
// disabled.
func (c Config) AutoSaveInterval() time.Duration {
	return time.Duration(c.AutoSaveSeconds) * time.Second
}

// Load reads the config file at path. A missing file yields the defaults
// with no error; malformed JSON is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("config %s: invalid JSON", path)
	}

	if v := gjson.GetBytes(data, "editor.text_width"); v.Exists() {
		cfg.TextWidth = int(v.Int())
	}
	if v := gjson.GetBytes(data, "editor.auto_save_seconds"); v.Exists() {
		cfg.AutoSaveSeconds = int(v.Int())
	}
	if v := gjson.GetBytes(data, "editor.page_rows"); v.Exists() {
		cfg.PageRows = int(v.Int())
	}
	if v := gjson.GetBytes(data, "display.show_status"); v.Exists() {
		cfg.ShowStatus = v.Bool()
	}
	if v := gjson.GetBytes(data, "display.status_timeout"); v.Exists() {
		cfg.StatusTimeout = int(v.Int())
	}

	return cfg.sanitized(), nil
}

// Save writes the config as JSON, creating parent directories as needed.
func (c Config) Save(path string) error {
	data, err := c.marshal()
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func (c Config) marshal() ([]byte, error) {
	out := []byte("{}")
	var err error
	for _, field := range []struct {
		key   string
		value any
	}{
		{"editor.text_width", c.TextWidth},
		{"editor.auto_save_seconds", c.AutoSaveSeconds},
		{"editor.page_rows", c.PageRows},
		{"display.show_status", c.ShowStatus},
		{"display.status_timeout", c.StatusTimeout},
	} {
		out, err = sjson.SetBytes(out, field.key, field.value)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// sanitized clamps nonsense values back to usable ones.
func (c Config) sanitized() Config {
	if c.TextWidth < 1 {
		c.TextWidth = DefaultTextWidth
	}
	if c.AutoSaveSeconds < 0 {
		c.AutoSaveSeconds = 0
	}
	if c.PageRows < 1 {
		c.PageRows = DefaultPageRows
	}
	if c.StatusTimeout < 0 {
		c.StatusTimeout = DefaultStatusTimeout
	}
	return c
}
