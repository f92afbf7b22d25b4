package mw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/VallenDraa/mock-development-api/internal/auth/token"
	"github.com/VallenDraa/mock-development-api/internal/domain"
)

func TestRequireAuthExposesClaimsToHandler(t *testing.T) {
	tm := token.New("test-secret", time.Minute)
	userID := uuid.New()
	tok, _, err := tm.Issue(context.Background(), userID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var (
		called bool
		claims domain.TokenClaims
		ok     bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		claims, ok = ClaimsFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+string(tok))
	RequireAuth(AuthDeps{Tokens: tm}, next).ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatal("handler was not reached with a valid token")
	}
	if !ok || claims.UserID != userID {
		t.Fatalf("claims in context: ok=%v user=%s, want user %s", ok, claims.UserID, userID)
	}
}

func TestRequireAuthStopsWithoutToken(t *testing.T) {
	tm := token.New("test-secret", time.Minute)

	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	RequireAuth(AuthDeps{Tokens: tm}, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	if called {
		t.Fatal("handler reached without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: want 401, got %d", rec.Code)
	}
}

func TestClaimsFromCtxEmpty(t *testing.T) {
	if _, ok := ClaimsFromCtx(context.Background()); ok {
		t.Fatal("claims found in an empty context")
	}
}
