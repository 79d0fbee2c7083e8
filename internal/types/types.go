// Package types defines the request/response shapes of the HTTP API.
package types

import "github.com/voici5986/Antigravity-Manager/internal/appconfig"

// ConfigStateResponse mirrors the config store state for UI consumers.
type ConfigStateResponse struct {
	Config  *appconfig.Config `json:"config"`
	Loading bool              `json:"loading"`
	Error   string            `json:"error,omitempty"`
}

// UpdateThemeRequest selects a new theme.
type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

// UpdateLanguageRequest selects a new UI language.
type UpdateLanguageRequest struct {
	Language string `json:"language"`
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// VersionResponse reports the running version and, when the updater
// endpoint was reachable, the latest published one.
type VersionResponse struct {
	Current string `json:"current"`
	Latest  string `json:"latest,omitempty"`
}
