// Package persist provides the durable backends for the application
// configuration: a JSON file in the data directory, or a single-row table
// in the app database.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/voici5986/Antigravity-Manager/internal/appconfig"
)

// FileService stores the config as pretty-printed JSON at a fixed path.
// On first load the file is created with defaults, so Load always returns a
// fully-formed config or fails.
type FileService struct {
	path string
}

// NewFileService creates a file-backed persistence service. The parent
// directory is created lazily on the first load or save.
func NewFileService(path string) *FileService {
	return &FileService{path: path}
}

// Path returns the config file location.
func (f *FileService) Path() string {
	return f.path
}

func (f *FileService) Load(ctx context.Context) (*appconfig.Config, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := appconfig.Default()
		if err := f.Save(ctx, cfg); err != nil {
			return nil, &LoadError{Err: err}
		}
		return cfg, nil
	}
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	var cfg appconfig.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &LoadError{Err: err}
	}
	return &cfg, nil
}

func (f *FileService) Save(_ context.Context, cfg *appconfig.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return &SaveError{Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return &SaveError{Err: err}
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}
