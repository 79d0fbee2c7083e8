package migration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/voici5986/Antigravity-Manager/internal/appconfig"
)

type captureService struct {
	saved *appconfig.Config
}

func (c *captureService) Load(context.Context) (*appconfig.Config, error) {
	return nil, os.ErrNotExist
}

func (c *captureService) Save(_ context.Context, cfg *appconfig.Config) error {
	c.saved = cfg.Clone()
	return nil
}

func writeV1(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestImportV1BareObject(t *testing.T) {
	dir := t.TempDir()
	writeV1(t, dir, "config.json", `{"theme":"dark","language":"zh","proxyPort":8045}`)

	svc := &captureService{}
	cfg, err := ImportV1From(context.Background(), dir, svc)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected an imported config")
	}
	if cfg.Theme != "dark" || cfg.Language != "zh" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if svc.saved == nil {
		t.Error("imported config was not persisted")
	}
}

func TestImportV1WrappedObject(t *testing.T) {
	dir := t.TempDir()
	writeV1(t, dir, "antigravity_config.json", `{"version":1,"config":{"theme":"light","language":"en"}}`)

	cfg, err := ImportV1From(context.Background(), dir, &captureService{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if cfg == nil || cfg.Theme != "light" {
		t.Fatalf("expected wrapped config to import, got %+v", cfg)
	}
}

func TestImportV1PrefersAntigravityIndex(t *testing.T) {
	dir := t.TempDir()
	writeV1(t, dir, "antigravity_config.json", `{"theme":"dark","language":"en"}`)
	writeV1(t, dir, "config.json", `{"theme":"light","language":"en"}`)

	cfg, err := ImportV1From(context.Background(), dir, &captureService{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected antigravity_config.json to win, got theme %q", cfg.Theme)
	}
}

func TestImportV1SkipsMalformedCandidate(t *testing.T) {
	dir := t.TempDir()
	writeV1(t, dir, "antigravity_config.json", `{broken`)
	writeV1(t, dir, "config.json", `{"theme":"dark","language":"en"}`)

	cfg, err := ImportV1From(context.Background(), dir, &captureService{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if cfg == nil || cfg.Theme != "dark" {
		t.Fatalf("expected fallback to the second candidate, got %+v", cfg)
	}
}

func TestImportV1RejectsNonConfigDocument(t *testing.T) {
	dir := t.TempDir()
	writeV1(t, dir, "config.json", `{"accounts":{"a":{"email":"x@y.z"}}}`)

	cfg, err := ImportV1From(context.Background(), dir, &captureService{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if cfg != nil {
		t.Errorf("a document without theme/language must not import, got %+v", cfg)
	}
}

func TestImportV1NothingToImport(t *testing.T) {
	svc := &captureService{}
	cfg, err := ImportV1From(context.Background(), t.TempDir(), svc)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if cfg != nil || svc.saved != nil {
		t.Error("expected a clean no-op on an empty directory")
	}
}
