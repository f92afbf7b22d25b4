package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/VallenDraa/mock-development-api/internal/domain"
)

func TestIssueParseRoundTrip(t *testing.T) {
	m := New("access-secret", time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	raw, issued, err := m.Issue(ctx, userID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if issued.UserID != userID || issued.JTI == "" {
		t.Fatalf("bad issued claims: %+v", issued)
	}

	parsed, err := m.Parse(ctx, raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.UserID != userID {
		t.Fatalf("sub mismatch: want %s, got %s", userID, parsed.UserID)
	}
	if parsed.JTI != issued.JTI {
		t.Fatalf("jti mismatch: %s vs %s", parsed.JTI, issued.JTI)
	}
}

func TestExpiredIsNotInvalid(t *testing.T) {
	m := New("access-secret", 0)
	ctx := context.Background()

	raw, _, err := m.Issue(ctx, uuid.New())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, err = m.Parse(ctx, raw)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("TTL=0 token: want ErrTokenExpired, got %v", err)
	}
}

func TestParseRejectsForeignAndGarbageTokens(t *testing.T) {
	m := New("access-secret", time.Minute)
	other := New("refresh-secret", time.Minute)
	ctx := context.Background()

	foreign, _, err := other.Issue(ctx, uuid.New())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name string
		raw  domain.Token
	}{
		{"garbage", "invalid-token"},
		{"empty", ""},
		{"signed with other secret", foreign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Parse(ctx, tt.raw); !errors.Is(err, domain.ErrTokenInvalid) {
				t.Fatalf("want ErrTokenInvalid, got %v", err)
			}
		})
	}
}

func TestIssuedTokensAreDistinct(t *testing.T) {
	m := New("access-secret", time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	a, _, err := m.Issue(ctx, userID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	b, _, err := m.Issue(ctx, userID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if a == b {
		t.Fatal("two issues produced identical tokens")
	}
}
