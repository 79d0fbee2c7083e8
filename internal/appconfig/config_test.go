package appconfig

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Theme != "system" {
		t.Errorf("expected default theme 'system', got %q", cfg.Theme)
	}
	if cfg.Language != "en" {
		t.Errorf("expected default language 'en', got %q", cfg.Language)
	}
}

func TestUnknownFieldsSurviveRoundTrip(t *testing.T) {
	doc := `{"theme":"dark","language":"zh","proxy":{"port":8045},"autoUpdate":true}`

	var cfg Config
	if err := json.Unmarshal([]byte(doc), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.Theme != "dark" || cfg.Language != "zh" {
		t.Fatalf("known fields not decoded: %+v", cfg)
	}

	out, err := json.Marshal(&cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"proxy"`, `"port":8045`, `"autoUpdate":true`} {
		if !strings.Contains(string(out), key) {
			t.Errorf("expected %s to be preserved, got %s", key, out)
		}
	}
}

func TestWithThemeLeavesOtherFieldsAlone(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{"theme":"dark","language":"en","proxy":{"port":1}}`), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	next := cfg.WithTheme("light")
	if next.Theme != "light" {
		t.Errorf("expected theme 'light', got %q", next.Theme)
	}
	if next.Language != "en" {
		t.Errorf("language changed: %q", next.Language)
	}
	if _, ok := next.extra["proxy"]; !ok {
		t.Error("extra fields dropped by WithTheme")
	}
	if cfg.Theme != "dark" {
		t.Error("WithTheme mutated the receiver")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{"theme":"dark","language":"en","x":1}`), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	cp := cfg.Clone()
	cp.Theme = "light"
	cp.extra["x"] = json.RawMessage(`2`)

	if cfg.Theme != "dark" {
		t.Error("clone shares the theme field")
	}
	if string(cfg.extra["x"]) != "1" {
		t.Error("clone shares the extra map")
	}
}

func TestCloneNil(t *testing.T) {
	var cfg *Config
	if cfg.Clone() != nil {
		t.Error("nil config must clone to nil")
	}
}
