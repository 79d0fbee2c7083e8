package persist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voici5986/Antigravity-Manager/internal/appconfig"
)

func TestFileServiceFirstRunCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	svc := NewFileService(path)

	cfg, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if cfg.Theme != "system" || cfg.Language != "en" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestFileServiceRoundTripPreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme":"dark","language":"zh","proxyPort":8045}`), 0600); err != nil {
		t.Fatal(err)
	}
	svc := NewFileService(path)

	cfg, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := svc.Save(context.Background(), cfg.WithTheme("light")); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"proxyPort": 8045`) {
		t.Errorf("unknown key lost on save:\n%s", raw)
	}
	if !strings.Contains(string(raw), `"theme": "light"`) {
		t.Errorf("theme not replaced:\n%s", raw)
	}
}

func TestFileServiceLoadErrorOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}
	svc := NewFileService(path)

	_, err := svc.Load(context.Background())
	if err == nil {
		t.Fatal("expected load failure")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("expected *LoadError, got %T", err)
	}
	if !strings.HasPrefix(err.Error(), "load config:") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestFileServiceSaveErrorType(t *testing.T) {
	dir := t.TempDir()
	// A directory at the file path makes the write fail.
	path := filepath.Join(dir, "config.json")
	if err := os.Mkdir(path, 0700); err != nil {
		t.Fatal(err)
	}
	svc := NewFileService(path)

	err := svc.Save(context.Background(), appconfig.Default())
	if err == nil {
		t.Fatal("expected save failure")
	}
	var saveErr *SaveError
	if !errors.As(err, &saveErr) {
		t.Errorf("expected *SaveError, got %T", err)
	}
}
