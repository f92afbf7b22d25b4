package domain

import (
	"context"
	"time"
)

type Token string

// TokenClaims — доменные клеймы, общие для access- и refresh-токенов.
type TokenClaims struct {
	JTI       string // уникальный id токена
	UserID    UserID // subject
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair выдаётся при логине.
type TokenPair struct {
	AccessToken  Token `json:"accessToken"`
	RefreshToken Token `json:"refreshToken"`
}

// Учётные данные логина.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData — то, что приходит на регистрацию после проверки полей на границе.
type RegisterData struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profilePicture"`
}

// Управление токенами. Access и refresh — два экземпляра одной реализации
// с независимыми секретом и TTL. Parse обязан различать Expired и Invalid.
type TokenManager interface {
	Issue(ctx context.Context, userID UserID) (Token, TokenClaims, error)
	Parse(ctx context.Context, t Token) (TokenClaims, error)
}

// AuthService — фасад, который зовёт транспорт. Все провалы — типизированные
// ошибки из errors.go, транспорт переводит их в конверт.
type AuthService interface {
	Login(ctx context.Context, creds Login) (TokenPair, error)
	Register(ctx context.Context, data RegisterData) error
	Whoami(ctx context.Context, accessToken Token) (PublicUser, error)
	Refresh(ctx context.Context, refreshToken Token) (Token, error)
}
