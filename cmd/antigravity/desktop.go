//go:build desktop

package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/voici5986/Antigravity-Manager/internal/logging"
	"github.com/voici5986/Antigravity-Manager/internal/persist/migrations"
	"github.com/voici5986/Antigravity-Manager/internal/server"
)

// wailsNotifier forwards theme changes to the webview as a "theme-changed"
// event so the frontend can restyle without polling the config endpoint.
type wailsNotifier struct {
	app *application.App
}

func (n wailsNotifier) NotifyThemeChanged(_ context.Context, theme string) error {
	n.app.EmitEvent("theme-changed", theme)
	return nil
}

// RunDesktop starts the manager with a native window.
func RunDesktop() {
	// Suppress verbose logging for clean output
	logging.Disable()
	migrations.QuietMode = true

	wailsApp := application.New(application.Options{
		Name: "Antigravity Manager",
		Mac: application.MacOptions{
			ApplicationShouldTerminateAfterLastWindowClosed: true,
		},
		OnShutdown: func() {
			fmt.Println("Antigravity Manager stopped.")
		},
	})

	svcCtx, err := initService(wailsNotifier{app: wailsApp})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer svcCtx.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bootstrap(ctx, svcCtx)
	startWatcher(ctx, svcCtx)

	serverURL := fmt.Sprintf("http://%s:%d", svcCtx.Config.App.Host, svcCtx.Config.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Run(ctx, svcCtx); err != nil {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	if !waitForServer(serverURL+"/health", 10*time.Second) {
		fmt.Println("Error: server failed to start")
		os.Exit(1)
	}

	wailsApp.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:      "main",
		Title:     "Antigravity Manager",
		Width:     1100,
		Height:    760,
		MinWidth:  800,
		MinHeight: 560,
		URL:       serverURL,
	})

	// Fatal server errors quit the window; everything else rides along.
	go func() {
		select {
		case err := <-errCh:
			fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
			cancel()
			wailsApp.Quit()
		case <-ctx.Done():
		}
	}()

	// Run the event loop on the main thread (blocks until app.Quit()).
	if err := wailsApp.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Desktop error: %v\n", err)
	}
	cancel()
}

// waitForServer polls url until it answers or the timeout elapses.
func waitForServer(url string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}
