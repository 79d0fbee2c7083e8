// Package host models the optional desktop-shell integration. The process
// may run inside the native shell (webview window) or headless; components
// that hold a nil Notifier are running outside the shell and skip the call.
package host

import "context"

// Notifier conveys a theme change to the host shell so the native chrome
// can restyle without polling the config endpoint.
type Notifier interface {
	NotifyThemeChanged(ctx context.Context, theme string) error
}
