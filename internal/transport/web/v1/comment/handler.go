package comment

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
	Log      *log.Logger
	Comments domain.CommentsRepo
}

type commentPayload struct {
	PostID   *domain.PostID     `json:"post"`
	OwnerID  *domain.UserID     `json:"owner"`
	Replies  []domain.CommentID `json:"replies"`
	Likes    []domain.UserID    `json:"likes"`
	Dislikes []domain.UserID    `json:"dislikes"`
}

// ListByPost отдаёт комментарии поста; GET /posts/{id}/comments.
func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) {
	const op = "comment.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "UUID is invalid or missing")
		return
	}

	comments, err := h.Comments.PostComments(r.Context(), postID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err, "post", postID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "post", postID, "count", len(comments))
	v1.WriteOK(w, r, http.StatusOK, "Successfully get comments", comments)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "comment.get"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "UUID is invalid or missing")
		return
	}

	c, err := h.Comments.CommentByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "comment not found", err, "id", id)
		v1.WriteError(w, r, http.StatusNotFound, "Comment not found")
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", id)
	v1.WriteOK(w, r, http.StatusOK, "Successfully get comment details", c)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "comment.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	var req commentPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	switch {
	case req.PostID == nil:
		v1.WriteError(w, r, http.StatusBadRequest, "Post is invalid or missing")
		return
	case req.OwnerID == nil:
		v1.WriteError(w, r, http.StatusBadRequest, "Owner is invalid or missing")
		return
	}
	if req.Replies == nil {
		req.Replies = []domain.CommentID{}
	}
	if req.Likes == nil {
		req.Likes = []domain.UserID{}
	}
	if req.Dislikes == nil {
		req.Dislikes = []domain.UserID{}
	}

	c := domain.Comment{
		ID:       uuid.New(),
		PostID:   *req.PostID,
		OwnerID:  *req.OwnerID,
		Replies:  req.Replies,
		Likes:    req.Likes,
		Dislikes: req.Dislikes,
	}
	if err := h.Comments.AddComment(r.Context(), c); err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", c.ID, "actor", actor(r))
	v1.WriteOK(w, r, http.StatusCreated, "Comment created successfully", c)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "comment.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "UUID is invalid or missing")
		return
	}

	if err := h.Comments.DeleteComment(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			v1.WriteError(w, r, http.StatusNotFound, "Comment not found")
			return
		}
		logx.Error(h.Log, reqID, op, "delete failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "id", id, "actor", actor(r))
	v1.WriteOK(w, r, http.StatusOK, "Comment deleted successfully", nil)
}

// actor — id пользователя из access-токена, которым закрыт роут.
func actor(r *http.Request) domain.UserID {
	claims, ok := mw.ClaimsFromCtx(r.Context())
	if !ok {
		return uuid.Nil
	}
	return claims.UserID
}
