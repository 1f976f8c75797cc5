package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))

	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v", cfg)
	}
}

func TestPartialFileKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"editor": {"text_width": 72}, "display": {"show_status": true}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)

	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TextWidth != 72 {
		t.Errorf("TextWidth = %d", cfg.TextWidth)
	}
	if !cfg.ShowStatus {
		t.Error("ShowStatus should be true")
	}
	if cfg.AutoSaveSeconds != DefaultAutoSaveSeconds {
		t.Errorf("AutoSaveSeconds = %d, want default", cfg.AutoSaveSeconds)
	}
	if cfg.PageRows != DefaultPageRows {
		t.Errorf("PageRows = %d, want default", cfg.PageRows)
	}
}

func TestInvalidJSONIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestZeroAutoSaveDisables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"editor":{"auto_save_seconds":0}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)

	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AutoSaveSeconds != 0 {
		t.Errorf("AutoSaveSeconds = %d, want 0", cfg.AutoSaveSeconds)
	}
	if cfg.AutoSaveInterval() != 0 {
		t.Errorf("AutoSaveInterval = %v, want 0", cfg.AutoSaveInterval())
	}
}

func TestSanitizeRejectsNonsense(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"editor":{"text_width":-5,"page_rows":0}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)

	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TextWidth != DefaultTextWidth {
		t.Errorf("TextWidth = %d, want default", cfg.TextWidth)
	}
	if cfg.PageRows != DefaultPageRows {
		t.Errorf("PageRows = %d, want default", cfg.PageRows)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	want := Config{
		TextWidth:       66,
		AutoSaveSeconds: 120,
		PageRows:        15,
		ShowStatus:      true,
		StatusTimeout:   5,
	}

	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
