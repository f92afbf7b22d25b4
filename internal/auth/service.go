// Package auth собирает репозиторий пользователей и два токен-менеджера в
// четыре операции, которые зовёт транспорт: login, register, refresh, whoami.
package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/VallenDraa/mock-development-api/internal/domain"
)

type Service struct {
	log     *log.Logger
	users   domain.UsersRepo
	access  domain.TokenManager
	refresh domain.TokenManager
}

// Ensure: Service implements domain.AuthService
var _ domain.AuthService = (*Service)(nil)

func New(logger *log.Logger, users domain.UsersRepo, access, refresh domain.TokenManager) *Service {
	return &Service{log: logger, users: users, access: access, refresh: refresh}
}

// Login сверяет учётные данные и выдаёт пару токенов. Любой провал проверки —
// один и тот же ErrInvalidCreds, без уточнения, что именно не совпало.
func (s *Service) Login(ctx context.Context, creds domain.Login) (domain.TokenPair, error) {
	u, err := s.users.Login(ctx, creds)
	if err != nil {
		return domain.TokenPair{}, domain.ErrInvalidCreds
	}

	access, _, err := s.access.Issue(ctx, u.ID)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, _, err := s.refresh.Issue(ctx, u.ID)
	if err != nil {
		return domain.TokenPair{}, err
	}

	s.log.Printf("login ok user=%s", u.ID)
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Register достраивает серверные поля (id, метки времени) и отдаёт запись
// репозиторию; ErrUserExists проходит наверх как есть.
func (s *Service) Register(ctx context.Context, data domain.RegisterData) error {
	now := time.Now().UTC()
	u := domain.User{
		ID:             uuid.New(),
		Email:          data.Email,
		Username:       data.Username,
		Password:       data.Password,
		ProfilePicture: data.ProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return s.users.Register(ctx, u)
}

// Whoami возвращает профиль владельца access-токена. Пользователь мог
// исчезнуть при рессиде — такой токен считается непригодным, как и битый.
func (s *Service) Whoami(ctx context.Context, raw domain.Token) (domain.PublicUser, error) {
	claims, err := s.access.Parse(ctx, raw)
	if err != nil {
		return domain.PublicUser{}, err
	}

	u, err := s.users.UserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.PublicUser{}, domain.ErrTokenInvalid
		}
		return domain.PublicUser{}, err
	}
	return u, nil
}

// Refresh обменивает живой refresh-токен на новый access-токен. Сам
// refresh-токен не ротируется и остаётся валидным до собственного expiry.
func (s *Service) Refresh(ctx context.Context, raw domain.Token) (domain.Token, error) {
	claims, err := s.refresh.Parse(ctx, raw)
	if err != nil {
		return "", err
	}

	access, _, err := s.access.Issue(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	s.log.Printf("refresh ok user=%s", claims.UserID)
	return access, nil
}
