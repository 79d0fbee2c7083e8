// Package version resolves the application version and the shared
// User-Agent string. The authoritative version comes from the remote
// updater endpoint; the compiled-in value is the fallback.
package version

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"runtime"
	"time"

	"github.com/voici5986/Antigravity-Manager/internal/logging"
)

// Current is the compiled-in fallback version, stamped at build time via
// -ldflags "-X .../internal/version.Current=x.y.z".
var Current = "3.3.3"

// DefaultEndpoint serves the latest published version.
const DefaultEndpoint = "https://antigravity-auto-updater-974169037036.us-central1.run.app"

const fetchTimeout = 3 * time.Second

// Pre-compiled regex for version parsing (X.Y.Z pattern)
var versionRe = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Parse extracts the first semver-looking X.Y.Z from text.
func Parse(text string) (string, bool) {
	m := versionRe.FindString(text)
	return m, m != ""
}

// Client fetches the latest version from the updater endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a version client. An empty endpoint selects
// DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch returns the version published at the updater endpoint.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build version request: %w", err)
	}
	// The version fetch itself identifies with the built-in version; the
	// resolved one isn't known yet.
	req.Header.Set("User-Agent", fmt.Sprintf("antigravity/%s %s/%s", Current, runtime.GOOS, runtime.GOARCH))
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch version: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("read version response: %w", err)
	}
	v, ok := Parse(string(body))
	if !ok {
		return "", fmt.Errorf("no version in response %q", string(body))
	}
	return v, nil
}

// Resolve returns the remote version when reachable, otherwise Current.
func (c *Client) Resolve(ctx context.Context) string {
	v, err := c.Fetch(ctx)
	if err != nil {
		logging.Warnf("version check failed, using built-in %s: %v", Current, err)
		return Current
	}
	return v
}

// UserAgent returns the User-Agent string for upstream requests,
// antigravity/{version} {os}/{arch}, using the resolved version.
func (c *Client) UserAgent(ctx context.Context) string {
	return fmt.Sprintf("antigravity/%s %s/%s", c.Resolve(ctx), runtime.GOOS, runtime.GOARCH)
}
