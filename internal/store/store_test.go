package store

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/VallenDraa/mock-development-api/internal/domain"
)

func userWith(name string) domain.User {
	return domain.User{ID: uuid.New(), Username: name, Email: name + "@example.com"}
}

func TestWriteInstallsNewSnapshot(t *testing.T) {
	s := New()

	s.Write(func(old domain.Snapshot) domain.Snapshot {
		return domain.Snapshot{Users: []domain.User{userWith("alice")}}
	})

	got := s.Read()
	if len(got.Users) != 1 || got.Users[0].Username != "alice" {
		t.Fatalf("unexpected snapshot after write: %+v", got)
	}
}

func TestWriteSerializesConcurrentTransforms(t *testing.T) {
	s := New()
	const writers = 50

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			s.Write(func(old domain.Snapshot) domain.Snapshot {
				users := make([]domain.User, 0, len(old.Users)+1)
				users = append(users, userWith("u"))
				users = append(users, old.Users...)
				return domain.Snapshot{Users: users, Posts: old.Posts, Comments: old.Comments}
			})
		}()
	}
	wg.Wait()

	if got := len(s.Read().Users); got != writers {
		t.Fatalf("lost updates: want %d users, got %d", writers, got)
	}
}

func TestReadersNeverObserveTornSnapshot(t *testing.T) {
	s := New()

	// Инвариант: в снапшоте всегда поровну пользователей и постов.
	put := func(n int) {
		s.Write(func(domain.Snapshot) domain.Snapshot {
			users := make([]domain.User, n)
			posts := make([]domain.Post, n)
			for i := 0; i < n; i++ {
				users[i] = userWith("u")
				posts[i] = domain.Post{ID: uuid.New(), OwnerID: users[i].ID}
			}
			return domain.Snapshot{Users: users, Posts: posts}
		})
	}
	put(1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for n := 2; n < 100; n++ {
			put(n)
		}
	}()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-done:
			return
		case <-deadline:
			t.Fatal("writer did not finish")
		default:
		}
		snap := s.Read()
		if len(snap.Users) != len(snap.Posts) {
			t.Fatalf("torn snapshot: %d users vs %d posts", len(snap.Users), len(snap.Posts))
		}
	}
}
