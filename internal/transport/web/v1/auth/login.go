package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/VallenDraa/mock-development-api/internal/domain"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/logx"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/mw"
	v1 "github.com/VallenDraa/mock-development-api/internal/transport/web/v1"
)

type HandlerLogin struct {
	Log  *log.Logger
	Auth domain.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *HandlerLogin) Login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	if req.Email == "" {
		v1.WriteError(w, r, http.StatusBadRequest, "Email is invalid or missing")
		return
	}
	if req.Password == "" {
		v1.WriteError(w, r, http.StatusBadRequest, "Password is invalid or missing")
		return
	}

	pair, err := h.Auth.Login(r.Context(), domain.Login{Email: req.Email, Password: req.Password})
	if err != nil {
		// Какое поле не совпало — наружу не уходит.
		logx.Error(h.Log, reqID, op, "login failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "email", req.Email)
	v1.WriteOK(w, r, http.StatusOK, "Login successful", pair)
}
