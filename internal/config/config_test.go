package config

import "testing"

func TestLoadFromBytesDefaults(t *testing.T) {
	c, err := LoadFromBytes(nil)
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}
	if c.App.Name != "antigravity-manager" {
		t.Errorf("expected default app name, got %q", c.App.Name)
	}
	if c.App.Host != "127.0.0.1" {
		t.Errorf("expected default host, got %q", c.App.Host)
	}
	if c.Port != 7317 {
		t.Errorf("expected default port 7317, got %d", c.Port)
	}
	if c.Storage.Driver != "file" {
		t.Errorf("expected default driver 'file', got %q", c.Storage.Driver)
	}
}

func TestLoadFromBytesOverrides(t *testing.T) {
	c, err := LoadFromBytes([]byte("port: 9999\nstorage:\n  driver: sqlite\n"))
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}
	if c.Port != 9999 {
		t.Errorf("expected port 9999, got %d", c.Port)
	}
	if c.Storage.Driver != "sqlite" {
		t.Errorf("expected driver sqlite, got %q", c.Storage.Driver)
	}
}

func TestLoadFromBytesEnvExpansion(t *testing.T) {
	t.Setenv("AG_TEST_HOST", "0.0.0.0")
	c, err := LoadFromBytes([]byte("app:\n  host: ${AG_TEST_HOST}\n"))
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}
	if c.App.Host != "0.0.0.0" {
		t.Errorf("expected env-expanded host, got %q", c.App.Host)
	}
}

func TestLoadFromBytesInvalidYAML(t *testing.T) {
	if _, err := LoadFromBytes([]byte("port: [not a port")); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
