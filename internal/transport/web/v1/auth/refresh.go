package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/VallenDraa/mock-development-api/internal/domain"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/logx"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/mw"
	v1 "github.com/VallenDraa/mock-development-api/internal/transport/web/v1"
)

type HandlerRefresh struct {
	Log  *log.Logger
	Auth domain.AuthService
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken domain.Token `json:"accessToken"`
}

// RefreshToken обменивает refresh-токен на новый access-токен.
// Сам refresh-токен не ротируется и продолжает действовать.
func (h *HandlerRefresh) RefreshToken(w http.ResponseWriter, r *http.Request) {
	const op = "auth.refresh"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if req.RefreshToken == "" {
		v1.WriteError(w, r, http.StatusBadRequest, "Refresh token is invalid or missing")
		return
	}

	access, err := h.Auth.Refresh(r.Context(), domain.Token(req.RefreshToken))
	if err != nil {
		logx.Error(h.Log, reqID, op, "refresh failed", err)
		// У refresh свои тексты 401, общий маппинг здесь не подходит.
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			v1.WriteError(w, r, http.StatusUnauthorized, "Refresh token expired")
		case errors.Is(err, domain.ErrTokenInvalid):
			v1.WriteError(w, r, http.StatusUnauthorized, "Invalid refresh token")
		default:
			v1.WriteDomainError(w, r, err)
		}
		return
	}

	logx.Info(h.Log, reqID, op, "ok")
	v1.WriteOK(w, r, http.StatusOK, "Successfully refreshed access token", refreshResponse{AccessToken: access})
}
