package health

import (
	"log"
	"net/http"

	"github.com/VallenDraa/mock-development-api/internal/store"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/logx"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/mw"
	v1 "github.com/VallenDraa/mock-development-api/internal/transport/web/v1"
)

type Handler struct {
	Log   *log.Logger
	Store *store.Store
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	const op = "health.liveness"
	reqID := mw.RequestIDFromCtx(r.Context())

	logx.Info(h.Log, reqID, op, "ok")
	v1.WriteOK(w, r, http.StatusOK, "ok", nil)
}

type readiness struct {
	Users    int `json:"users"`
	Posts    int `json:"posts"`
	Comments int `json:"comments"`
}

// Readiness: сервис готов, когда стор засеян.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	const op = "health.readiness"
	reqID := mw.RequestIDFromCtx(r.Context())

	snap := h.Store.Read()
	if len(snap.Users) == 0 {
		logx.Error(h.Log, reqID, op, "store is empty", nil)
		v1.WriteError(w, r, http.StatusServiceUnavailable, "Store is not seeded yet")
		return
	}

	logx.Info(h.Log, reqID, op, "ready")
	v1.WriteOK(w, r, http.StatusOK, "ready", readiness{
		Users:    len(snap.Users),
		Posts:    len(snap.Posts),
		Comments: len(snap.Comments),
	})
}
