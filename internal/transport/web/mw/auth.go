package mw

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/VallenDraa/mock-development-api/internal/domain"
)

const claimsKey ctxKey = "auth_claims"

type AuthDeps struct {
	Tokens domain.TokenManager // access-токены
}

// RequireAuth пускает дальше только запросы с живым access-токеном в
// Authorization: Bearer. Отсутствующий и битый токен дают один ответ
// ("Missing authentication"), просроченный — отдельный ("Expired token").
func RequireAuth(deps AuthDeps, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := ExtractBearer(r.Header.Get("Authorization"))
		if raw == "" {
			writeUnauthorized(w, "Missing authentication")
			return
		}

		claims, err := deps.Tokens.Parse(r.Context(), domain.Token(raw))
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				writeUnauthorized(w, "Expired token")
				return
			}
			writeUnauthorized(w, "Missing authentication")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ClaimsFromCtx(ctx context.Context) (domain.TokenClaims, bool) {
	c, ok := ctx.Value(claimsKey).(domain.TokenClaims)
	return c, ok
}

func ExtractBearer(h string) string {
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(domain.Fail(
		http.StatusUnauthorized,
		http.StatusText(http.StatusUnauthorized),
		message,
	))
}
