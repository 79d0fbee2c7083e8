package handler

import (
	"net/http"

	"github.com/voici5986/Antigravity-Manager/internal/httputil"
	"github.com/voici5986/Antigravity-Manager/internal/svc"
	"github.com/voici5986/Antigravity-Manager/internal/types"
	"github.com/voici5986/Antigravity-Manager/internal/version"
)

// HealthCheckHandler reports liveness and the running version.
func HealthCheckHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.OkJSON(w, &types.HealthResponse{Status: "ok", Version: version.Current})
	}
}

// VersionCheckHandler reports the running version and the latest published
// one. The remote check is best-effort: when the endpoint is unreachable
// only Current is returned.
func VersionCheckHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := &types.VersionResponse{Current: version.Current}
		if latest, err := svcCtx.Version.Fetch(r.Context()); err == nil {
			resp.Latest = latest
		}
		httputil.OkJSON(w, resp)
	}
}
