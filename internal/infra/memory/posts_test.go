package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/VallenDraa/mock-development-api/internal/domain"
)

func newPost(owner domain.UserID) domain.Post {
	return domain.Post{
		ID:          uuid.New(),
		OwnerID:     owner,
		Description: "a post",
		Images:      []string{"https://example.com/i.png"},
		Likes:       []domain.UserID{},
		Dislikes:    []domain.UserID{},
	}
}

func TestPostLifecycle(t *testing.T) {
	repo, s := newTestRepo()
	ctx := context.Background()
	owner := uuid.New()

	p := newPost(owner)
	if err := repo.AddPost(ctx, p); err != nil {
		t.Fatalf("add: %v", err)
	}

	comment := domain.Comment{ID: uuid.New(), PostID: p.ID, OwnerID: owner, Replies: []domain.CommentID{}}
	if err := repo.AddComment(ctx, comment); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	detail, err := repo.PostByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if len(detail.Comments) != 1 || detail.Comments[0] != comment.ID {
		t.Fatalf("post detail misses its comment: %+v", detail.Comments)
	}

	p.Description = "edited"
	updated, err := repo.UpdatePost(ctx, p)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != "edited" || updated.OwnerID != owner {
		t.Fatalf("unexpected updated post: %+v", updated)
	}
	if got, _ := repo.PostByID(ctx, p.ID); got.Description != "edited" {
		t.Fatalf("update not visible: %q", got.Description)
	}

	if err := repo.DeletePost(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.PostByID(ctx, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("deleted post still found: %v", err)
	}

	// Комментарий намеренно переживает удаление поста.
	if got := len(s.Read().Comments); got != 1 {
		t.Fatalf("comments cascaded on post delete: %d left", got)
	}
}

func TestUpdateWithoutOwnerKeepsOwner(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()
	owner := uuid.New()

	p := newPost(owner)
	if err := repo.AddPost(ctx, p); err != nil {
		t.Fatalf("add: %v", err)
	}

	edit := p
	edit.OwnerID = uuid.Nil
	edit.Description = "edited"
	updated, err := repo.UpdatePost(ctx, edit)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.OwnerID != owner {
		t.Fatalf("owner not preserved: %s", updated.OwnerID)
	}
}

func TestUpdateUnknownPost(t *testing.T) {
	repo, s := newTestRepo()
	ctx := context.Background()
	if err := repo.AddPost(ctx, newPost(uuid.New())); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := s.Read()

	if _, err := repo.UpdatePost(ctx, newPost(uuid.New())); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := repo.DeletePost(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	// Неудачные мутации не трогают снапшот.
	after := s.Read()
	if len(after.Posts) != len(before.Posts) {
		t.Fatalf("failed mutation changed snapshot: %d -> %d posts", len(before.Posts), len(after.Posts))
	}
}

func TestCommentLifecycle(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()
	postID := uuid.New()

	c := domain.Comment{ID: uuid.New(), PostID: postID, OwnerID: uuid.New(), Replies: []domain.CommentID{}}
	if err := repo.AddComment(ctx, c); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := repo.CommentByID(ctx, c.ID)
	if err != nil || got.ID != c.ID {
		t.Fatalf("by id: %v, %+v", err, got)
	}

	list, err := repo.PostComments(ctx, postID)
	if err != nil || len(list) != 1 {
		t.Fatalf("post comments: %v, %d", err, len(list))
	}

	if err := repo.DeleteComment(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.CommentByID(ctx, c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("deleted comment still found: %v", err)
	}
	if err := repo.DeleteComment(ctx, c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("double delete: want ErrNotFound, got %v", err)
	}
}
