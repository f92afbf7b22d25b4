package memory

import (
	"context"

	"github.com/VallenDraa/mock-development-api/internal/domain"
)

// Login ищет пользователя по email и сверяет пароль байт-в-байт.
// Неизвестный email и неверный пароль дают один и тот же ErrNotFound —
// вызывающий не должен узнать, какое из полей не совпало.
func (r *Repo) Login(_ context.Context, creds domain.Login) (domain.PublicUser, error) {
	snap := r.store.Read()
	for _, u := range snap.Users {
		if u.Email != creds.Email {
			continue
		}
		if u.Password != creds.Password {
			return domain.PublicUser{}, domain.ErrNotFound
		}
		return u.Public(), nil
	}
	return domain.PublicUser{}, domain.ErrNotFound
}

// Register проверяет уникальность email и username и вставляет пользователя
// в голову списка. Проверка и вставка живут в одной трансформации, иначе две
// одновременные регистрации с одним email прошли бы обе.
func (r *Repo) Register(_ context.Context, user domain.User) error {
	var exists bool
	r.store.Write(func(old domain.Snapshot) domain.Snapshot {
		for _, u := range old.Users {
			if u.Email == user.Email || u.Username == user.Username {
				exists = true
				return old
			}
		}

		users := make([]domain.User, 0, len(old.Users)+1)
		users = append(users, user)
		users = append(users, old.Users...)
		return domain.Snapshot{Users: users, Posts: old.Posts, Comments: old.Comments}
	})

	if exists {
		r.logger.Printf("Register conflict email=%s username=%s", user.Email, user.Username)
		return domain.ErrUserExists
	}
	r.logger.Printf("Register ok id=%s username=%s", user.ID, user.Username)
	return nil
}

func (r *Repo) UserByID(_ context.Context, id domain.UserID) (domain.PublicUser, error) {
	for _, u := range r.store.Read().Users {
		if u.ID == id {
			return u.Public(), nil
		}
	}
	return domain.PublicUser{}, domain.ErrNotFound
}

func (r *Repo) Users(_ context.Context) ([]domain.PublicUser, error) {
	snap := r.store.Read()
	out := make([]domain.PublicUser, len(snap.Users))
	for i, u := range snap.Users {
		out[i] = u.Public()
	}
	return out, nil
}

// UpdateUser заменяет username/email/profilePicture пользователя, не трогая
// пароль и createdAt. Проверка коллизий с другими пользователями и замена —
// одна трансформация.
func (r *Repo) UpdateUser(_ context.Context, user domain.User) (domain.PublicUser, error) {
	var (
		updated  bool
		conflict bool
		result   domain.PublicUser
	)
	r.store.Write(func(old domain.Snapshot) domain.Snapshot {
		for _, u := range old.Users {
			if u.ID != user.ID && (u.Email == user.Email || u.Username == user.Username) {
				conflict = true
				return old
			}
		}

		users := make([]domain.User, len(old.Users))
		for i, u := range old.Users {
			if u.ID == user.ID {
				updated = true
				next := u
				next.Username = user.Username
				next.Email = user.Email
				next.ProfilePicture = user.ProfilePicture
				next.UpdatedAt = user.UpdatedAt
				users[i] = next
				result = next.Public()
				continue
			}
			users[i] = u
		}
		if !updated {
			return old
		}
		return domain.Snapshot{Users: users, Posts: old.Posts, Comments: old.Comments}
	})

	switch {
	case conflict:
		r.logger.Printf("UpdateUser conflict id=%s email=%s username=%s", user.ID, user.Email, user.Username)
		return domain.PublicUser{}, domain.ErrUserExists
	case !updated:
		return domain.PublicUser{}, domain.ErrNotFound
	}
	r.logger.Printf("UpdateUser ok id=%s", user.ID)
	return result, nil
}

// UpdateUserPassword сверяет старый пароль и ставит новый внутри одной
// трансформации. Несовпадение старого пароля — ErrInvalidCreds.
func (r *Repo) UpdateUserPassword(_ context.Context, id domain.UserID, oldPassword, newPassword string) error {
	var (
		found    bool
		mismatch bool
	)
	r.store.Write(func(old domain.Snapshot) domain.Snapshot {
		users := make([]domain.User, len(old.Users))
		for i, u := range old.Users {
			if u.ID == id {
				found = true
				if u.Password != oldPassword {
					mismatch = true
					return old
				}
				next := u
				next.Password = newPassword
				users[i] = next
				continue
			}
			users[i] = u
		}
		if !found || mismatch {
			return old
		}
		return domain.Snapshot{Users: users, Posts: old.Posts, Comments: old.Comments}
	})

	switch {
	case !found:
		return domain.ErrNotFound
	case mismatch:
		r.logger.Printf("UpdateUserPassword mismatch id=%s", id)
		return domain.ErrInvalidCreds
	}
	r.logger.Printf("UpdateUserPassword ok id=%s", id)
	return nil
}

// DeleteUser удаляет пользователя по id. Его посты и комментарии остаются —
// протухшие ссылки на владельца допустимы, как и после рессида.
func (r *Repo) DeleteUser(_ context.Context, id domain.UserID) error {
	var deleted bool
	r.store.Write(func(old domain.Snapshot) domain.Snapshot {
		users := make([]domain.User, 0, len(old.Users))
		for _, u := range old.Users {
			if u.ID == id {
				deleted = true
				continue
			}
			users = append(users, u)
		}
		if !deleted {
			return old
		}
		return domain.Snapshot{Users: users, Posts: old.Posts, Comments: old.Comments}
	})

	if !deleted {
		return domain.ErrNotFound
	}
	r.logger.Printf("DeleteUser ok id=%s", id)
	return nil
}
