package seed

import (
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/VallenDraa/mock-development-api/internal/domain"
)

func TestGenerateCounts(t *testing.T) {
	c := Counts{Users: 20, Posts: 30, Comments: 15}
	snap := Generate(c)

	if len(snap.Users) != c.Users {
		t.Errorf("users: want %d, got %d", c.Users, len(snap.Users))
	}
	if len(snap.Posts) != c.Posts {
		t.Errorf("posts: want %d, got %d", c.Posts, len(snap.Posts))
	}
	// Каждая группа — корень плюс от 1 до 5 кандидатов.
	if min, max := c.Comments*2, c.Comments*6; len(snap.Comments) < min || len(snap.Comments) > max {
		t.Errorf("comments: want between %d and %d, got %d", min, max, len(snap.Comments))
	}
}

func TestGenerateUserUniqueness(t *testing.T) {
	snap := Generate(Counts{Users: 200, Posts: 1, Comments: 0})

	ids := map[uuid.UUID]struct{}{}
	emails := map[string]struct{}{}
	usernames := map[string]struct{}{}
	for _, u := range snap.Users {
		if _, dup := ids[u.ID]; dup {
			t.Fatalf("duplicate user id %s", u.ID)
		}
		if _, dup := emails[u.Email]; dup {
			t.Fatalf("duplicate email %q", u.Email)
		}
		if _, dup := usernames[u.Username]; dup {
			t.Fatalf("duplicate username %q", u.Username)
		}
		ids[u.ID] = struct{}{}
		emails[u.Email] = struct{}{}
		usernames[u.Username] = struct{}{}
		if u.Password == "" {
			t.Fatalf("user %s has empty password", u.ID)
		}
	}
}

func TestGenerateReferentialIntegrity(t *testing.T) {
	snap := Generate(Counts{Users: 10, Posts: 5, Comments: 50})

	userIDs := map[domain.UserID]struct{}{}
	for _, u := range snap.Users {
		userIDs[u.ID] = struct{}{}
	}
	postIDs := map[domain.PostID]struct{}{}
	for _, p := range snap.Posts {
		postIDs[p.ID] = struct{}{}
		if _, ok := userIDs[p.OwnerID]; !ok {
			t.Errorf("post %s owned by unknown user %s", p.ID, p.OwnerID)
		}
	}
	commentIDs := map[domain.CommentID]struct{}{}
	for _, c := range snap.Comments {
		commentIDs[c.ID] = struct{}{}
	}

	for _, c := range snap.Comments {
		if _, ok := postIDs[c.PostID]; !ok {
			t.Errorf("comment %s attached to unknown post %s", c.ID, c.PostID)
		}
		if _, ok := userIDs[c.OwnerID]; !ok {
			t.Errorf("comment %s owned by unknown user %s", c.ID, c.OwnerID)
		}
		seen := map[domain.CommentID]struct{}{}
		for _, reply := range c.Replies {
			if reply == c.ID {
				t.Errorf("comment %s references itself in replies", c.ID)
			}
			if _, ok := commentIDs[reply]; !ok {
				t.Errorf("comment %s references unknown reply %s", c.ID, reply)
			}
			if _, dup := seen[reply]; dup {
				t.Errorf("comment %s lists reply %s twice", c.ID, reply)
			}
			seen[reply] = struct{}{}
		}
	}
}

func TestGenerateImageLinks(t *testing.T) {
	snap := Generate(Counts{Users: 10, Posts: 10, Comments: 0})

	check := func(raw string) {
		t.Helper()
		u, err := url.Parse(raw)
		if err != nil || u.Scheme != "https" || u.Host == "" {
			t.Fatalf("bad image link %q", raw)
		}
	}
	for _, u := range snap.Users {
		check(u.ProfilePicture)
	}
	for _, p := range snap.Posts {
		if len(p.Images) == 0 {
			t.Fatalf("post %s has no images", p.ID)
		}
		for _, img := range p.Images {
			check(img)
		}
	}
}

func TestGenerateWithoutPostsSkipsComments(t *testing.T) {
	snap := Generate(Counts{Users: 3, Posts: 0, Comments: 10})
	if len(snap.Comments) != 0 {
		t.Fatalf("comments without posts: got %d", len(snap.Comments))
	}
}

func TestReplyAmountPolicy(t *testing.T) {
	snap := Generate(Counts{Users: 5, Posts: 3, Comments: 100})

	// Находим корни (комментарии с непустыми Replies) и проверяем границы:
	// ответов никогда не больше пяти и все они из того же поста.
	byID := map[domain.CommentID]domain.Comment{}
	for _, c := range snap.Comments {
		byID[c.ID] = c
	}
	for _, c := range snap.Comments {
		if len(c.Replies) > 5 {
			t.Fatalf("comment %s has %d replies", c.ID, len(c.Replies))
		}
		for _, id := range c.Replies {
			if byID[id].PostID != c.PostID {
				t.Fatalf("reply %s lives on a different post than root %s", id, c.ID)
			}
		}
	}
}
