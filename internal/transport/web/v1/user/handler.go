package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/VallenDraa/mock-development-api/internal/domain"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/logx"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/mw"
	v1 "github.com/VallenDraa/mock-development-api/internal/transport/web/v1"
)

type Handler struct {
	Log   *log.Logger
	Users domain.UsersRepo
}

type userPayload struct {
	ProfilePicture string `json:"profilePicture"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

type passwordPayload struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// List возвращает страницу пользователей текущего снапшота (без паролей).
// Параметры query: page (с единицы) и limit, по умолчанию 1 и 10.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "user.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	page, err := queryInt(r, "page", 1)
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "Page is invalid")
		return
	}
	limit, err := queryInt(r, "limit", 10)
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "Limit is invalid")
		return
	}

	users, err := h.Users.Users(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	start := (page - 1) * limit
	if start > len(users) {
		start = len(users)
	}
	end := start + limit
	if end > len(users) {
		end = len(users)
	}

	logx.Info(h.Log, reqID, op, "ok", "page", page, "limit", limit, "count", end-start)
	v1.WriteOK(w, r, http.StatusOK, "Successfully get users", users[start:end])
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "user.get"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "UUID is invalid or missing")
		return
	}

	u, err := h.Users.UserByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "user not found", err, "id", id)
		v1.WriteError(w, r, http.StatusNotFound, "User not found")
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", id)
	v1.WriteOK(w, r, http.StatusOK, "Successfully get user details", u)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "user.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	var req userPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if msg, ok := validateUser(req, true); !ok {
		v1.WriteError(w, r, http.StatusBadRequest, msg)
		return
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:             uuid.New(),
		Email:          req.Email,
		Username:       req.Username,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := h.Users.Register(r.Context(), u); err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", u.ID)
	v1.WriteOK(w, r, http.StatusCreated, "User created successfully", u.Public())
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "user.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "UUID is invalid or missing")
		return
	}

	var req userPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if msg, ok := validateUser(req, false); !ok {
		v1.WriteError(w, r, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.Users.UpdateUser(r.Context(), domain.User{
		ID:             id,
		Email:          req.Email,
		Username:       req.Username,
		ProfilePicture: req.ProfilePicture,
		UpdatedAt:      time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			v1.WriteError(w, r, http.StatusNotFound, "User not found")
			return
		}
		logx.Error(h.Log, reqID, op, "update failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", id)
	v1.WriteOK(w, r, http.StatusOK, "User updated successfully", updated)
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	const op = "user.password"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "UUID is invalid or missing")
		return
	}

	var req passwordPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	switch {
	case req.OldPassword == "":
		v1.WriteError(w, r, http.StatusBadRequest, "Old password is invalid or missing")
		return
	case req.NewPassword == "":
		v1.WriteError(w, r, http.StatusBadRequest, "New password is invalid or missing")
		return
	}

	if err := h.Users.UpdateUserPassword(r.Context(), id, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			v1.WriteError(w, r, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidCreds):
			v1.WriteError(w, r, http.StatusBadRequest, "Old password does not match")
		default:
			logx.Error(h.Log, reqID, op, "password update failed", err, "id", id)
			v1.WriteDomainError(w, r, err)
		}
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", id)
	v1.WriteOK(w, r, http.StatusOK, "User password updated successfully", nil)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "user.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "UUID is invalid or missing")
		return
	}

	if err := h.Users.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			v1.WriteError(w, r, http.StatusNotFound, "User not found")
			return
		}
		logx.Error(h.Log, reqID, op, "delete failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", id)
	v1.WriteOK(w, r, http.StatusOK, "User deleted successfully", nil)
}

// Порядок проверок повторяет порядок полей в payload.
func validateUser(req userPayload, needPassword bool) (string, bool) {
	switch {
	case req.ProfilePicture == "":
		return "Profile picture is invalid or missing", false
	case req.Username == "":
		return "Username is invalid or missing", false
	case req.Email == "":
		return "Email is invalid or missing", false
	case needPassword && req.Password == "":
		return "Password is invalid or missing", false
	}
	return "", true
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New("not a positive number")
	}
	return n, nil
}
