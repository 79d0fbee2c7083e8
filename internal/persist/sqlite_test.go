package persist

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/voici5986/Antigravity-Manager/internal/appconfig"
)

func TestSQLiteServiceFirstRunCreatesDefaults(t *testing.T) {
	svc, err := NewSQLiteService(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer svc.Close()

	cfg, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if cfg.Theme != "system" || cfg.Language != "en" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSQLiteServiceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	svc, err := NewSQLiteService(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx := context.Background()
	if err := svc.Save(ctx, appconfig.Default().WithTheme("dark").WithLanguage("zh")); err != nil {
		t.Fatalf("save: %v", err)
	}
	cfg, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "dark" || cfg.Language != "zh" {
		t.Errorf("round trip mismatch: %+v", cfg)
	}

	// Reopen: the row (and schema) must persist across connections.
	if err := svc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	svc, err = NewSQLiteService(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer svc.Close()

	cfg, err = svc.Load(ctx)
	if err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("config lost across reopen: %+v", cfg)
	}
}
