package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/VallenDraa/mock-development-api/internal/domain"
)

func (r *Repo) AddPost(_ context.Context, post domain.Post) error {
	r.store.Write(func(old domain.Snapshot) domain.Snapshot {
		posts := make([]domain.Post, 0, len(old.Posts)+1)
		posts = append(posts, post)
		posts = append(posts, old.Posts...)
		return domain.Snapshot{Users: old.Users, Posts: posts, Comments: old.Comments}
	})
	r.logger.Printf("AddPost ok id=%s owner=%s", post.ID, post.OwnerID)
	return nil
}

func (r *Repo) Posts(_ context.Context) ([]domain.Post, error) {
	return r.store.Read().Posts, nil
}

// PostByID возвращает пост вместе с id его комментариев; пост и комментарии
// берутся из одного снапшота.
func (r *Repo) PostByID(_ context.Context, id domain.PostID) (domain.PostDetail, error) {
	snap := r.store.Read()
	for _, p := range snap.Posts {
		if p.ID != id {
			continue
		}
		detail := domain.PostDetail{Post: p, Comments: []domain.CommentID{}}
		for _, c := range snap.Comments {
			if c.PostID == id {
				detail.Comments = append(detail.Comments, c.ID)
			}
		}
		return detail, nil
	}
	return domain.PostDetail{}, domain.ErrNotFound
}

// UpdatePost заменяет пост по id и возвращает итоговую запись. Поиск и
// замена — одна трансформация; нулевой OwnerID во входных данных означает
// «оставить прежнего владельца».
func (r *Repo) UpdatePost(_ context.Context, post domain.Post) (domain.Post, error) {
	var (
		updated bool
		result  domain.Post
	)
	r.store.Write(func(old domain.Snapshot) domain.Snapshot {
		posts := make([]domain.Post, len(old.Posts))
		for i, p := range old.Posts {
			if p.ID == post.ID {
				updated = true
				next := post
				if next.OwnerID == uuid.Nil {
					next.OwnerID = p.OwnerID
				}
				posts[i] = next
				result = next
				continue
			}
			posts[i] = p
		}
		if !updated {
			return old
		}
		return domain.Snapshot{Users: old.Users, Posts: posts, Comments: old.Comments}
	})

	if !updated {
		return domain.Post{}, domain.ErrNotFound
	}
	r.logger.Printf("UpdatePost ok id=%s", post.ID)
	return result, nil
}

// DeletePost удаляет пост по id. Комментарии поста не каскадируются —
// стор не делает cascade-delete, протухшие ссылки допустимы.
func (r *Repo) DeletePost(_ context.Context, id domain.PostID) error {
	var deleted bool
	r.store.Write(func(old domain.Snapshot) domain.Snapshot {
		posts := make([]domain.Post, 0, len(old.Posts))
		for _, p := range old.Posts {
			if p.ID == id {
				deleted = true
				continue
			}
			posts = append(posts, p)
		}
		if !deleted {
			return old
		}
		return domain.Snapshot{Users: old.Users, Posts: posts, Comments: old.Comments}
	})

	if !deleted {
		return domain.ErrNotFound
	}
	r.logger.Printf("DeletePost ok id=%s", id)
	return nil
}
