package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/VallenDraa/mock-development-api/internal/domain"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/logx"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/mw"
	v1 "github.com/VallenDraa/mock-development-api/internal/transport/web/v1"
)

type Handler struct {
	Log   *log.Logger
	Posts domain.PostsRepo
}

type postPayload struct {
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Likes       []domain.UserID `json:"likes"`
	Dislikes    []domain.UserID `json:"dislikes"`
	OwnerID     *domain.UserID  `json:"owner,omitempty"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "post.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	posts, err := h.Posts.Posts(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "count", len(posts))
	v1.WriteOK(w, r, http.StatusOK, "Successfully get posts", posts)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "post.get"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "UUID is invalid or missing")
		return
	}

	detail, err := h.Posts.PostByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "post not found", err, "id", id)
		v1.WriteError(w, r, http.StatusNotFound, "Post not found")
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", id)
	v1.WriteOK(w, r, http.StatusOK, "Successfully get post details", detail)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "post.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	var req postPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if msg, ok := validatePost(req, true); !ok {
		v1.WriteError(w, r, http.StatusBadRequest, msg)
		return
	}

	p := domain.Post{
		ID:          uuid.New(),
		OwnerID:     *req.OwnerID,
		Description: req.Description,
		Images:      req.Images,
		Likes:       req.Likes,
		Dislikes:    req.Dislikes,
	}
	if err := h.Posts.AddPost(r.Context(), p); err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", p.ID, "actor", actor(r))
	v1.WriteOK(w, r, http.StatusCreated, "Post created successfully", p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "post.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "UUID is invalid or missing")
		return
	}

	var req postPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if msg, ok := validatePost(req, false); !ok {
		v1.WriteError(w, r, http.StatusBadRequest, msg)
		return
	}

	// Владелец при редактировании не меняется: нулевой OwnerID велит
	// репозиторию сохранить прежнего внутри той же трансформации.
	p := domain.Post{
		ID:          id,
		Description: req.Description,
		Images:      req.Images,
		Likes:       req.Likes,
		Dislikes:    req.Dislikes,
	}
	updated, err := h.Posts.UpdatePost(r.Context(), p)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			v1.WriteError(w, r, http.StatusNotFound, "Post not found")
			return
		}
		logx.Error(h.Log, reqID, op, "update failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", id)
	v1.WriteOK(w, r, http.StatusOK, "Post updated successfully", updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "post.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "UUID is invalid or missing")
		return
	}

	if err := h.Posts.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			v1.WriteError(w, r, http.StatusNotFound, "Post not found")
			return
		}
		logx.Error(h.Log, reqID, op, "delete failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", id, "actor", actor(r))
	v1.WriteOK(w, r, http.StatusOK, "Post deleted successfully", nil)
}

// actor — id пользователя из access-токена, которым закрыт роут.
func actor(r *http.Request) domain.UserID {
	claims, ok := mw.ClaimsFromCtx(r.Context())
	if !ok {
		return uuid.Nil
	}
	return claims.UserID
}

func validatePost(req postPayload, needOwner bool) (string, bool) {
	switch {
	case req.Description == "":
		return "Description is invalid or missing", false
	case req.Likes == nil:
		return "Likes are invalid or missing", false
	case req.Dislikes == nil:
		return "Dislikes are invalid or missing", false
	case req.Images == nil:
		return "Images are invalid or missing", false
	case needOwner && req.OwnerID == nil:
		return "Owner is invalid or missing", false
	}
	return "", true
}
