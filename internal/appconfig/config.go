// Package appconfig holds the persisted application configuration and the
// in-memory store that mediates between UI consumers and persistence.
package appconfig

import "encoding/json"

// Config is the application's persisted settings record. Theme and Language
// are the fields the app manages directly; every other key found in the
// persisted document is kept in extra and written back unmodified, so a
// newer config file survives a round trip through an older binary.
type Config struct {
	Theme    string
	Language string

	extra map[string]json.RawMessage
}

// Default returns the configuration used on first run.
func Default() *Config {
	return &Config{Theme: "system", Language: "en"}
}

// Clone returns a deep copy. A nil receiver clones to nil.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	cp := &Config{Theme: c.Theme, Language: c.Language}
	if len(c.extra) > 0 {
		cp.extra = make(map[string]json.RawMessage, len(c.extra))
		for k, v := range c.extra {
			cp.extra[k] = v
		}
	}
	return cp
}

// WithTheme returns a copy with the theme field replaced.
func (c *Config) WithTheme(theme string) *Config {
	cp := c.Clone()
	cp.Theme = theme
	return cp
}

// WithLanguage returns a copy with the language field replaced.
func (c *Config) WithLanguage(language string) *Config {
	cp := c.Clone()
	cp.Language = language
	return cp
}

func (c Config) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(c.extra)+2)
	for k, v := range c.extra {
		out[k] = v
	}
	theme, err := json.Marshal(c.Theme)
	if err != nil {
		return nil, err
	}
	language, err := json.Marshal(c.Language)
	if err != nil {
		return nil, err
	}
	out["theme"] = theme
	out["language"] = language
	return json.Marshal(out)
}

func (c *Config) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["theme"]; ok {
		if err := json.Unmarshal(v, &c.Theme); err != nil {
			return err
		}
		delete(raw, "theme")
	}
	if v, ok := raw["language"]; ok {
		if err := json.Unmarshal(v, &c.Language); err != nil {
			return err
		}
		delete(raw, "language")
	}
	if len(raw) > 0 {
		c.extra = raw
	} else {
		c.extra = nil
	}
	return nil
}
