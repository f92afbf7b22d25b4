package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VallenDraa/mock-development-api/internal/domain"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/mw"
)

// MapDomainError решает HTTP-статус + message для конверта ошибки.
// Поле error конверта — всегда текст HTTP-статуса.
func MapDomainError(err error) (httpStatus int, message string) {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		// Намеренно 400, не 409: клиенты ждут Bad Request.
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrInvalidCreds):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrTokenMissing):
		return http.StatusUnauthorized, "Missing authentication"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "Missing authentication"
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "Expired token"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrBadParams):
		return http.StatusBadRequest, "Invalid request payload"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// WriteOK пишет конверт успеха {statusCode, message, data}.
func WriteOK(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	writeJSON(w, r, status, domain.Ok(status, message, data))
}

// WriteError пишет конверт ошибки {statusCode, error, message}.
func WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, domain.Fail(status, http.StatusText(status), message))
}

// WriteDomainError маппит доменную ошибку и пишет конверт ошибки.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := MapDomainError(err)
	WriteError(w, r, status, message)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", mw.RequestIDFromCtx(r.Context()))
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}
