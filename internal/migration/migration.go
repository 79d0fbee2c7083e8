// Package migration imports configuration left behind by the V1 agent.
package migration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/voici5986/Antigravity-Manager/internal/appconfig"
	"github.com/voici5986/Antigravity-Manager/internal/logging"
)

// Candidate filenames in the V1 data directory, in preference order. Both
// names existed in the wild.
var indexFiles = []string{"antigravity_config.json", "config.json"}

// V1Dir returns the data directory used by the V1 agent.
func V1Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".antigravity-agent"), nil
}

// ImportV1 scans the V1 data directory for a usable configuration and
// persists it through svc when found. It returns the imported config, or
// nil when there is nothing to import. Unreadable or malformed candidates
// are logged and skipped, never fatal.
func ImportV1(ctx context.Context, svc appconfig.PersistenceService) (*appconfig.Config, error) {
	dir, err := V1Dir()
	if err != nil {
		return nil, err
	}
	return ImportV1From(ctx, dir, svc)
}

// ImportV1From is ImportV1 against an explicit directory.
func ImportV1From(ctx context.Context, dir string, svc appconfig.PersistenceService) (*appconfig.Config, error) {
	for _, name := range indexFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logging.Warnf("v1 import: failed to read %s: %v", path, err)
			}
			continue
		}

		cfg, ok := parseV1(data)
		if !ok {
			logging.Warnf("v1 import: %s is not a usable config, skipping", path)
			continue
		}

		logging.Infof("V1 config discovered: %s", path)
		if err := svc.Save(ctx, cfg); err != nil {
			return nil, fmt.Errorf("import v1 config: %w", err)
		}
		return cfg, nil
	}
	return nil, nil
}

// parseV1 accepts either a bare settings object or a wrapper document with
// a "config" key, matching the two V1 formats. A document carrying neither
// a theme nor a language is rejected as not a config.
func parseV1(data []byte) (*appconfig.Config, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false
	}
	if inner, ok := raw["config"]; ok {
		data = inner
	}

	var cfg appconfig.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, false
	}
	if cfg.Theme == "" && cfg.Language == "" {
		return nil, false
	}
	return &cfg, true
}
