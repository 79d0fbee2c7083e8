package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/voici5986/Antigravity-Manager/internal/defaults"
	"github.com/voici5986/Antigravity-Manager/internal/host"
	"github.com/voici5986/Antigravity-Manager/internal/logging"
	"github.com/voici5986/Antigravity-Manager/internal/migration"
	"github.com/voici5986/Antigravity-Manager/internal/server"
	"github.com/voici5986/Antigravity-Manager/internal/svc"
	"github.com/voici5986/Antigravity-Manager/internal/watch"
)

// initService builds the shared ServiceContext over the data directory.
func initService(notifier host.Notifier) (*svc.ServiceContext, error) {
	dataDir, err := defaults.EnsureDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize data directory: %w", err)
	}
	return svc.NewServiceContext(ServerConfig, dataDir, notifier)
}

// bootstrap performs the initial load. On a true first run (no config file
// yet) it first tries to import a V1 installation so users keep their
// settings across the rewrite.
func bootstrap(ctx context.Context, svcCtx *svc.ServiceContext) {
	if svcCtx.ConfigPath != "" {
		if _, err := os.Stat(svcCtx.ConfigPath); errors.Is(err, fs.ErrNotExist) {
			if cfg, err := migration.ImportV1(ctx, svcCtx.Persist); err != nil {
				logging.Warnf("V1 import failed: %v", err)
			} else if cfg != nil {
				logging.Infof("Imported V1 configuration")
			}
		}
	}
	svcCtx.Store.LoadConfig(ctx)
}

// RunAll starts the API server headless (no native window).
func RunAll() {
	svcCtx, err := initService(nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer svcCtx.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\nReceived signal: %v - shutting down...\n", sig)
		cancel()
	}()

	bootstrap(ctx, svcCtx)
	startWatcher(ctx, svcCtx)

	if err := server.Run(ctx, svcCtx); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// startWatcher follows external edits of the config file so the store
// converges on out-of-band changes. Only the file backend has a file to
// watch.
func startWatcher(ctx context.Context, svcCtx *svc.ServiceContext) {
	if svcCtx.ConfigPath == "" {
		return
	}
	go func() {
		if err := watch.Config(ctx, svcCtx.ConfigPath, func() {
			svcCtx.Store.LoadConfig(ctx)
		}); err != nil {
			logging.Warnf("config watcher stopped: %v", err)
		}
	}()
}

// ServeCmd runs the HTTP API without a native window.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the local API server (no window)",
		Run: func(cmd *cobra.Command, args []string) {
			RunAll()
		},
	}
}
