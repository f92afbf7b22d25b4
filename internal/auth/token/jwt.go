package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/VallenDraa/mock-development-api/internal/domain"
)

// Manager подписывает и проверяет JWT. Access и refresh — два экземпляра
// с независимыми секретом и TTL, refresh-токен никогда не проверяется
// access-секретом и наоборот.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// внутренний тип для подписи/парсинга с jwt.RegisteredClaims
type jwtClaims struct {
	jwt.RegisteredClaims
}

// Ensure: Manager implements domain.TokenManager
var _ domain.TokenManager = (*Manager)(nil)

// Issue выпускает JWT с sub=userID и возвращает доменные клеймы.
// jti делает каждый выпуск уникальным даже в пределах одной секунды.
func (m *Manager) Issue(_ context.Context, userID domain.UserID) (domain.Token, domain.TokenClaims, error) {
	now := time.Now().UTC()
	jti := uuid.NewString()

	cl := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti,
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	tokenStr, err := t.SignedString(m.secret)
	if err != nil {
		return "", domain.TokenClaims{}, err
	}

	return domain.Token(tokenStr), domain.TokenClaims{
		JTI:       jti,
		UserID:    userID,
		IssuedAt:  cl.IssuedAt.Time,
		ExpiresAt: cl.ExpiresAt.Time,
	}, nil
}

// Parse валидирует подпись и сроки. Просроченный, но корректно подписанный
// токен — ErrTokenExpired; всё остальное (битая форма, чужая подпись,
// неожиданный алгоритм) — ErrTokenInvalid. Вызывающие обязаны различать эти
// исходы: у них разные пользовательские сообщения.
func (m *Manager) Parse(_ context.Context, raw domain.Token) (domain.TokenClaims, error) {
	var out jwtClaims
	tkn, err := jwt.ParseWithClaims(string(raw), &out, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.TokenClaims{}, domain.ErrTokenExpired
		}
		return domain.TokenClaims{}, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return domain.TokenClaims{}, domain.ErrTokenInvalid
	}

	userID, err := uuid.Parse(out.Subject)
	if err != nil {
		return domain.TokenClaims{}, domain.ErrTokenInvalid
	}

	claims := domain.TokenClaims{JTI: out.ID, UserID: userID}
	if out.IssuedAt != nil {
		claims.IssuedAt = out.IssuedAt.Time
	}
	if out.ExpiresAt != nil {
		claims.ExpiresAt = out.ExpiresAt.Time
	}
	return claims, nil
}
