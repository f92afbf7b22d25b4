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

// HandlerRegister обрабатывает POST /auth/register
type HandlerRegister struct {
	Log  *log.Logger
	Auth domain.AuthService
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	ProfilePicture  string `json:"profilePicture"`
}

func (h *HandlerRegister) Register(w http.ResponseWriter, r *http.Request) {
	const op = "auth.register"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	// Поля проверяются по одному, первое пустое определяет сообщение.
	if msg, ok := validateRegister(req); !ok {
		logx.Error(h.Log, reqID, op, "validation failed", domain.ErrBadParams, "reason", msg)
		v1.WriteError(w, r, http.StatusBadRequest, msg)
		return
	}

	err := h.Auth.Register(r.Context(), domain.RegisterData{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		logx.Error(h.Log, reqID, op, "register failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "username", req.Username)
	v1.WriteOK(w, r, http.StatusCreated, "Registration successful", nil)
}

func validateRegister(req registerRequest) (string, bool) {
	switch {
	case req.Username == "":
		return "Username is invalid or missing", false
	case req.Email == "":
		return "Email is invalid or missing", false
	case req.Password == "":
		return "Password is invalid or missing", false
	case req.ConfirmPassword == "":
		return "Password confirmation is invalid or missing", false
	case req.Password != req.ConfirmPassword:
		return "Password and confirm password do not match", false
	}
	return "", true
}
