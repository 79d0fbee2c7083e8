// Package handler exposes the config store over the local HTTP API.
package handler

import (
	"net/http"

	"github.com/voici5986/Antigravity-Manager/internal/appconfig"
	"github.com/voici5986/Antigravity-Manager/internal/httputil"
	"github.com/voici5986/Antigravity-Manager/internal/svc"
	"github.com/voici5986/Antigravity-Manager/internal/types"
)

func stateResponse(svcCtx *svc.ServiceContext) *types.ConfigStateResponse {
	st := svcCtx.Store.Snapshot()
	return &types.ConfigStateResponse{Config: st.Config, Loading: st.Loading, Error: st.Err}
}

// GetConfigHandler returns the current store state.
func GetConfigHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.OkJSON(w, stateResponse(svcCtx))
	}
}

// LoadConfigHandler re-reads the persisted config into the store. Load
// failures surface only through the error field of the returned state.
func LoadConfigHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svcCtx.Store.LoadConfig(r.Context())
		httputil.OkJSON(w, stateResponse(svcCtx))
	}
}

// SaveConfigHandler persists a complete replacement config.
func SaveConfigHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg appconfig.Config
		if err := httputil.Parse(r, &cfg); err != nil {
			httputil.Error(w, err)
			return
		}
		if err := svcCtx.Store.SaveConfig(r.Context(), &cfg, false); err != nil {
			httputil.ErrorWithCode(w, http.StatusInternalServerError, err.Error())
			return
		}
		httputil.OkJSON(w, stateResponse(svcCtx))
	}
}

// UpdateThemeHandler switches the theme through the silent-save path.
func UpdateThemeHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.UpdateThemeRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.Error(w, err)
			return
		}
		if err := svcCtx.Store.UpdateTheme(r.Context(), req.Theme); err != nil {
			httputil.ErrorWithCode(w, http.StatusInternalServerError, err.Error())
			return
		}
		httputil.OkJSON(w, stateResponse(svcCtx))
	}
}

// UpdateLanguageHandler switches the UI language through the silent-save path.
func UpdateLanguageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.UpdateLanguageRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.Error(w, err)
			return
		}
		if err := svcCtx.Store.UpdateLanguage(r.Context(), req.Language); err != nil {
			httputil.ErrorWithCode(w, http.StatusInternalServerError, err.Error())
			return
		}
		httputil.OkJSON(w, stateResponse(svcCtx))
	}
}
