// Package svc wires the shared service context handed to every handler.
package svc

import (
	"fmt"
	"path/filepath"

	"github.com/voici5986/Antigravity-Manager/internal/appconfig"
	"github.com/voici5986/Antigravity-Manager/internal/config"
	"github.com/voici5986/Antigravity-Manager/internal/host"
	"github.com/voici5986/Antigravity-Manager/internal/persist"
	"github.com/voici5986/Antigravity-Manager/internal/version"
)

// ServiceContext is constructed once per process and shared by the HTTP
// handlers, the CLI and the desktop shell. It owns the config store and the
// persistence backend behind it.
type ServiceContext struct {
	Config  *config.Config
	Store   *appconfig.Store
	Persist appconfig.PersistenceService
	Version *version.Client

	// ConfigPath is the watched file when the file backend is active,
	// empty for the sqlite backend.
	ConfigPath string

	closer func() error
}

// NewServiceContext builds the persistence backend selected by c and the
// store on top of it. notifier may be nil (headless build).
func NewServiceContext(c *config.Config, dataDir string, notifier host.Notifier) (*ServiceContext, error) {
	svcCtx := &ServiceContext{
		Config:  c,
		Version: version.NewClient(c.Updater.Endpoint),
	}

	var backend appconfig.PersistenceService
	switch c.Storage.Driver {
	case "", "file":
		fs := persist.NewFileService(filepath.Join(dataDir, "config.json"))
		svcCtx.ConfigPath = fs.Path()
		backend = fs
	case "sqlite":
		db, err := persist.NewSQLiteService(filepath.Join(dataDir, "data", "antigravity.db"))
		if err != nil {
			return nil, err
		}
		svcCtx.closer = db.Close
		backend = db
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	svcCtx.Persist = backend
	svcCtx.Store = appconfig.NewStore(backend, notifier)
	return svcCtx, nil
}

// Close releases the persistence backend.
func (s *ServiceContext) Close() error {
	if s.closer != nil {
		return s.closer()
	}
	return nil
}
