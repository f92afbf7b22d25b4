package auth

import (
	"log"
	"net/http"

	"github.com/VallenDraa/mock-development-api/internal/domain"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/logx"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/mw"
	v1 "github.com/VallenDraa/mock-development-api/internal/transport/web/v1"
)

type HandlerMe struct {
	Log  *log.Logger
	Auth domain.AuthService
}

type meResponse struct {
	User domain.PublicUser `json:"user"`
}

func (h *HandlerMe) Me(w http.ResponseWriter, r *http.Request) {
	const op = "auth.me"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	raw := mw.ExtractBearer(r.Header.Get("Authorization"))
	if raw == "" {
		logx.Error(h.Log, reqID, op, "missing token", domain.ErrTokenMissing)
		v1.WriteDomainError(w, r, domain.ErrTokenMissing)
		return
	}

	user, err := h.Auth.Whoami(r.Context(), domain.Token(raw))
	if err != nil {
		logx.Error(h.Log, reqID, op, "whoami failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", user.ID)
	v1.WriteOK(w, r, http.StatusOK, "Successfully get current user details", meResponse{User: user})
}
