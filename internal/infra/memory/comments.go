package memory

import (
	"context"

	"github.com/VallenDraa/mock-development-api/internal/domain"
)

func (r *Repo) AddComment(_ context.Context, comment domain.Comment) error {
	r.store.Write(func(old domain.Snapshot) domain.Snapshot {
		comments := make([]domain.Comment, 0, len(old.Comments)+1)
		comments = append(comments, comment)
		comments = append(comments, old.Comments...)
		return domain.Snapshot{Users: old.Users, Posts: old.Posts, Comments: comments}
	})
	r.logger.Printf("AddComment ok id=%s post=%s", comment.ID, comment.PostID)
	return nil
}

func (r *Repo) CommentByID(_ context.Context, id domain.CommentID) (domain.Comment, error) {
	for _, c := range r.store.Read().Comments {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Comment{}, domain.ErrNotFound
}

func (r *Repo) PostComments(_ context.Context, postID domain.PostID) ([]domain.Comment, error) {
	out := []domain.Comment{}
	for _, c := range r.store.Read().Comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

// DeleteComment удаляет комментарий по id. Ссылки на него из чужих Replies
// остаются — их разрешение по id просто перестанет находить запись.
func (r *Repo) DeleteComment(_ context.Context, id domain.CommentID) error {
	var deleted bool
	r.store.Write(func(old domain.Snapshot) domain.Snapshot {
		comments := make([]domain.Comment, 0, len(old.Comments))
		for _, c := range old.Comments {
			if c.ID == id {
				deleted = true
				continue
			}
			comments = append(comments, c)
		}
		if !deleted {
			return old
		}
		return domain.Snapshot{Users: old.Users, Posts: old.Posts, Comments: comments}
	})

	if !deleted {
		return domain.ErrNotFound
	}
	r.logger.Printf("DeleteComment ok id=%s", id)
	return nil
}
